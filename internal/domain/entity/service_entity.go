package entity

import "time"

// ServiceRequest is published by an NGO looking for volunteers or services.
type ServiceRequest struct {
	ID          string
	NGOID       string
	Title       string
	Description string
	Category    string
	Location    string
	Open        bool
	CreatedAt   time.Time
	UpdatedAt   time.Time
}

// ServiceOffer is published by an NGO offering a service or program.
type ServiceOffer struct {
	ID          string
	NGOID       string
	Title       string
	Description string
	Category    string
	Location    string
	Open        bool
	CreatedAt   time.Time
	UpdatedAt   time.Time
}

// ApplicationTarget distinguishes what an application points at.
type ApplicationTarget string

const (
	TargetServiceRequest ApplicationTarget = "service_request"
	TargetServiceOffer   ApplicationTarget = "service_offer"
)

// Application is submitted by an individual or company against a request or offer.
type Application struct {
	ID          string
	TargetType  ApplicationTarget
	TargetID    string
	ApplicantID string
	Message     string
	Status      string // submitted, accepted, rejected
	CreatedAt   time.Time
}
