package models

import "io"

// EventCollection holds club events.
const EventCollection = "event"

// Event is a scheduled club activity.
type Event struct {
	Title       string     `bson:"title" json:"title" required:"true"`
	Description *string    `bson:"description" json:"description"`
	Location    *string    `bson:"location" json:"location"`
	StartTime   *Timestamp `bson:"start_time" json:"start_time"`
	EndTime     *Timestamp `bson:"end_time" json:"end_time"`
	BannerURL   *string    `bson:"banner_url" json:"banner_url"`
	IsPublished bool       `bson:"is_published" json:"is_published"`
}

func NewEvent() *Event {
	return &Event{IsPublished: true}
}

// DecodeEvent reads and validates an Event from a JSON body.
func DecodeEvent(r io.Reader) (*Event, error) {
	event := NewEvent()
	if err := decodeInto(r, event); err != nil {
		return nil, err
	}
	return event, nil
}
