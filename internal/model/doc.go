package model

// Package model defines the domain data structures shared across the app:
// download requests, stream descriptors, worker events and status enums.
// Values are small and copied by value so a request cannot change once a
// download has started.
