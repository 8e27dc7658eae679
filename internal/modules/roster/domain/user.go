package domain

import (
	"fmt"
	"strings"
	"time"
)

const SchemaVersion = 1

// DefaultTagVocabulary seeds every new user.
var DefaultTagVocabulary = []string{
	"tired", "tilted", "good_table", "ran_hot", "ran_cold", "tough_table",
}

// User is the full per-player record. The username doubles as the primary
// key; there is no authentication layer on top of it.
type User struct {
	Username      string    `json:"username"`
	CreatedAt     time.Time `json:"created_at"`
	Sessions      []Session `json:"sessions"`
	Locations     []string  `json:"locations"`
	TagVocabulary []string  `json:"tags"`
}

func NewUser(username string, createdAt time.Time) (User, error) {
	username = strings.TrimSpace(username)
	if username == "" {
		return User{}, fmt.Errorf("username is required")
	}
	return User{
		Username:      username,
		CreatedAt:     createdAt,
		Sessions:      []Session{},
		Locations:     []string{},
		TagVocabulary: append([]string(nil), DefaultTagVocabulary...),
	}, nil
}

// UpsertSession inserts the record, or replaces the entry with the same id
// in place. An updated session keeps its original list position. The
// session's location joins the user's location set.
func (u *User) UpsertSession(record Session) {
	for i := range u.Sessions {
		if u.Sessions[i].ID == record.ID {
			u.Sessions[i] = record
			u.rememberLocation(record.Location)
			return
		}
	}
	u.Sessions = append(u.Sessions, record)
	u.rememberLocation(record.Location)
}

// DeleteSession removes the session with the given id. Unknown ids are a
// no-op; the returned flag only tells the caller whether anything changed.
func (u *User) DeleteSession(id string) bool {
	for i := range u.Sessions {
		if u.Sessions[i].ID == id {
			u.Sessions = append(u.Sessions[:i], u.Sessions[i+1:]...)
			return true
		}
	}
	return false
}

func (u *User) FindSession(id string) (Session, bool) {
	for i := range u.Sessions {
		if u.Sessions[i].ID == id {
			return u.Sessions[i], true
		}
	}
	return Session{}, false
}

// AddTag extends the tag vocabulary; duplicates are ignored.
func (u *User) AddTag(tag string) {
	tag = strings.TrimSpace(tag)
	if tag == "" {
		return
	}
	for _, existing := range u.TagVocabulary {
		if existing == tag {
			return
		}
	}
	u.TagVocabulary = append(u.TagVocabulary, tag)
}

func (u *User) rememberLocation(location string) {
	location = strings.TrimSpace(location)
	if location == "" {
		return
	}
	for _, existing := range u.Locations {
		if existing == location {
			return
		}
	}
	u.Locations = append(u.Locations, location)
}
