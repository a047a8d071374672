package models

import "io"

// AnnouncementCollection holds news and announcements.
const AnnouncementCollection = "announcement"

// Announcement represents an announcement document in the MongoDB database
type Announcement struct {
	Title       string  `bson:"title" json:"title" required:"true"`
	Content     string  `bson:"content" json:"content" required:"true"`
	CoverURL    *string `bson:"cover_url" json:"cover_url"`
	IsPublished bool    `bson:"is_published" json:"is_published"`
}

func NewAnnouncement() *Announcement {
	return &Announcement{IsPublished: true}
}

// DecodeAnnouncement reads and validates an Announcement from a JSON body.
func DecodeAnnouncement(r io.Reader) (*Announcement, error) {
	ann := NewAnnouncement()
	if err := decodeInto(r, ann); err != nil {
		return nil, err
	}
	return ann, nil
}
