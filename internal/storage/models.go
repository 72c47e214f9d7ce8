package storage

import "time"

// Message roles in a conversation transcript.
const (
	RoleUser      = "user"
	RoleAssistant = "assistant"
	RoleSystem    = "system"
)

// Contact is the canonical normalized professional record. Contacts returned
// by enrichment are transient per search; only an explicit save persists one.
type Contact struct {
	ID              string   `json:"id"`
	Name            string   `json:"name"`
	FirstName       string   `json:"firstName,omitempty"`
	LastName        string   `json:"lastName,omitempty"`
	Title           string   `json:"title,omitempty"`
	Company         string   `json:"company,omitempty"`
	Location        string   `json:"location,omitempty"`
	Industry        string   `json:"industry,omitempty"`
	Emails          []string `json:"emails"`
	Phones          []string `json:"phones"`
	LinkedInURL     string   `json:"linkedInUrl,omitempty"`
	ProfileImageURL string   `json:"profileImageUrl,omitempty"`
	RelevanceScore  float64  `json:"relevanceScore"`
	Summary         string   `json:"summary,omitempty"`
}

// ConversationMessage is one transcript entry. Immutable once appended.
type ConversationMessage struct {
	Role             string    `json:"role"`
	Content          string    `json:"content"`
	Timestamp        time.Time `json:"timestamp"`
	Contacts         []Contact `json:"contacts,omitempty"`
	SuggestedActions []string  `json:"suggestedActions,omitempty"`
}

// Conversation is the aggregate root for a multi-turn contact search.
// Messages are append-only; counters are derived per assistant turn.
type Conversation struct {
	ID            string                `json:"id"`
	UserID        string                `json:"userId"`
	Title         string                `json:"title"`
	Messages      []ConversationMessage `json:"messages"`
	ContactCount  int                   `json:"contactCount"`
	FollowUpCount int                   `json:"followUpCount"`
	IsArchived    bool                  `json:"isArchived"`
	CreatedAt     time.Time             `json:"createdAt"`
	UpdatedAt     time.Time             `json:"updatedAt"`
}

// SearchHistoryRecord is the lightweight one-line record kept per search.
type SearchHistoryRecord struct {
	ID          string    `json:"id"`
	UserID      string    `json:"userId"`
	Query       string    `json:"query"`
	ResultCount int       `json:"resultCount"`
	Timestamp   time.Time `json:"timestamp"`
}

// SavedContact is a Contact the user chose to keep, keyed by (userID, contactID).
type SavedContact struct {
	UserID    string    `json:"userId"`
	ContactID string    `json:"contactId"`
	Contact   Contact   `json:"contact"`
	SavedAt   time.Time `json:"savedAt"`
}

// User mirrors the identity established by the auth collaborator.
type User struct {
	ID          string    `json:"id"` // Google subject
	Email       string    `json:"email"`
	Name        string    `json:"name"`
	PictureURL  string    `json:"pictureUrl,omitempty"`
	CreatedAt   time.Time `json:"createdAt"`
	LastLoginAt time.Time `json:"lastLoginAt"`
}
