package models

import "io"

// BoardMemberCollection holds the management board.
const BoardMemberCollection = "boardmember"

// BoardMember is one seat on the club's management board.
// Socials maps a platform name (instagram, linkedin, github, website) to a URL.
type BoardMember struct {
	Name      string         `bson:"name" json:"name" required:"true"`
	Role      string         `bson:"role" json:"role" required:"true"`
	Bio       *string        `bson:"bio" json:"bio"`
	AvatarURL *string        `bson:"avatar_url" json:"avatar_url"`
	Socials   map[string]any `bson:"socials" json:"socials"`
}

func NewBoardMember() *BoardMember {
	return &BoardMember{Socials: map[string]any{}}
}

// DecodeBoardMember reads and validates a BoardMember from a JSON body.
func DecodeBoardMember(r io.Reader) (*BoardMember, error) {
	member := NewBoardMember()
	if err := decodeInto(r, member); err != nil {
		return nil, err
	}
	return member, nil
}
