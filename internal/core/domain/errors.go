package domain

import "errors"

var ErrUserNotFound = errors.New("user not found")
var ErrUserExists = errors.New("user already exists")
var ErrInvalidCredentials = errors.New("invalid credentials")
var ErrInvalidRole = errors.New("invalid role")
var ErrForbidden = errors.New("access forbidden")
var ErrSubmissionNotFound = errors.New("contact submission not found")
var ErrDeliveryFinal = errors.New("delivery state already final")
