package search

import (
	"context"
	"errors"
	"fmt"
	"log"
	"time"

	"contact-scout/internal/llm"
	"contact-scout/internal/storage"
)

const titleMaxLen = 60

const welcomeMessage = "Hi! I'm your contact discovery assistant. Describe who you're looking for, " +
	"like a role, company, industry, or location, and I'll find matching professionals."

// CreateConversation starts a new conversation seeded with the assistant
// welcome message and zero counts.
func (s *Service) CreateConversation(ctx context.Context, userID string) (*storage.Conversation, error) {
	conv := &storage.Conversation{
		UserID: userID,
		Title:  "New Search",
		Messages: []storage.ConversationMessage{
			{
				Role:      storage.RoleAssistant,
				Content:   welcomeMessage,
				Timestamp: time.Now().UTC(),
			},
		},
	}
	if err := s.store.CreateConversation(ctx, conv); err != nil {
		return nil, err
	}
	return conv, nil
}

// SendMessage appends the caller's turn, runs the pipeline, and appends one
// assistant turn. A stage failure becomes a visible assistant turn instead of
// an error: the conversation always reaches a saved terminal state and the
// transcript grows by exactly two entries either way.
func (s *Service) SendMessage(ctx context.Context, userID, conversationID, text string) (*storage.Conversation, error) {
	conv, err := s.store.GetConversation(ctx, userID, conversationID)
	if err != nil {
		return nil, err
	}

	conv.Messages = append(conv.Messages, storage.ConversationMessage{
		Role:      storage.RoleUser,
		Content:   text,
		Timestamp: time.Now().UTC(),
	})

	firstUserTurn := countRole(conv.Messages, storage.RoleUser) == 1
	if firstUserTurn {
		conv.Title = deriveTitle(text)
	}
	followUpDelta := 0
	if !firstUserTurn {
		followUpDelta = 1
	}

	// The user is charged as soon as the intent to query is registered,
	// even if the pipeline fails below.
	s.usage.Record(ctx, userID)

	history := historyTurns(conv.Messages[:len(conv.Messages)-1])
	interp, err := s.interpreter.InterpretQuery(ctx, text, history)
	if err != nil {
		log.Printf("[Conversation] Pipeline failed for conversation %s: %v", conv.ID, err)
		conv.Messages = append(conv.Messages, errorTurn(err))
		conv.FollowUpCount += followUpDelta
		if saveErr := s.store.SaveConversationTurn(ctx, conv, 0, followUpDelta); saveErr != nil {
			return nil, saveErr
		}
		return conv, nil
	}

	contacts := s.enricher.FindContacts(ctx, interp)
	summary := ComposeSummary(interp, contacts)

	conv.Messages = append(conv.Messages, storage.ConversationMessage{
		Role:             storage.RoleAssistant,
		Content:          summary,
		Timestamp:        time.Now().UTC(),
		Contacts:         contacts,
		SuggestedActions: SuggestActions(len(contacts) > 0),
	})
	conv.ContactCount += len(contacts)
	conv.FollowUpCount += followUpDelta

	if err := s.store.SaveConversationTurn(ctx, conv, len(contacts), followUpDelta); err != nil {
		return nil, err
	}

	rec := &storage.SearchHistoryRecord{
		UserID:      userID,
		Query:       text,
		ResultCount: len(contacts),
	}
	if err := s.store.AppendSearchHistory(ctx, rec); err != nil {
		log.Printf("[Conversation] Failed to append history for user %s: %v", userID, err)
	}

	return conv, nil
}

// deriveTitle trims the first user message down to a 60-character title.
func deriveTitle(text string) string {
	runes := []rune(text)
	if len(runes) <= titleMaxLen {
		return text
	}
	return string(runes[:titleMaxLen-3]) + "..."
}

// errorTurn converts a pipeline failure into a user-facing assistant message.
func errorTurn(err error) storage.ConversationMessage {
	reason := "something went wrong while searching"
	var ie *llm.InterpretationError
	if errors.As(err, &ie) {
		switch ie.Kind {
		case llm.KindTimeout:
			reason = "the search took too long to interpret"
		case llm.KindParse:
			reason = "I couldn't turn that request into search criteria"
		default:
			reason = "the interpretation service is currently unavailable"
		}
	}
	return storage.ConversationMessage{
		Role:             storage.RoleAssistant,
		Content:          fmt.Sprintf("Sorry, %s. Please rephrase your request and I'll try again.", reason),
		Timestamp:        time.Now().UTC(),
		SuggestedActions: SuggestActions(false),
	}
}

func historyTurns(messages []storage.ConversationMessage) []llm.Turn {
	turns := make([]llm.Turn, 0, len(messages))
	for _, m := range messages {
		turns = append(turns, llm.Turn{Role: m.Role, Content: m.Content})
	}
	return turns
}

func countRole(messages []storage.ConversationMessage, role string) int {
	n := 0
	for _, m := range messages {
		if m.Role == role {
			n++
		}
	}
	return n
}
