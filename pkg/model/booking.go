package model

import (
	"time"
)

type Booking struct {
	ID        string    `json:"id" bson:"_id"`
	RoomID    string    `json:"room_id" bson:"room_id"`
	UserID    string    `json:"user_id" bson:"user_id"`
	StartTime time.Time `json:"start_time" bson:"start_time"`
	EndTime   time.Time `json:"end_time" bson:"end_time"`
}

type BookingCreate struct {
	RoomID    string    `json:"room_id" validate:"required,notblank,max=128"`
	UserID    string    `json:"user_id" validate:"required,notblank,max=128"`
	StartTime time.Time `json:"start_time" validate:"required"`
	EndTime   time.Time `json:"end_time" validate:"required"`
}

// BookingUpdate only carries the interval; room and user never change.
type BookingUpdate struct {
	StartTime time.Time `json:"start_time" validate:"required"`
	EndTime   time.Time `json:"end_time" validate:"required"`
}
