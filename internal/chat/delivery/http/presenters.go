package http

import (
	"errors"
	"time"

	"chat-session-manager/internal/chat"
)

// --- Request DTOs ---

type createReq struct {
	SessionID string `json:"session_id" binding:"omitempty,max=128"`
}

func (r createReq) validate() error { return nil }

func (r createReq) toInput() chat.CreateSessionInput {
	return chat.CreateSessionInput{
		SessionID: r.SessionID,
	}
}

// ---

type sendReq struct {
	ID      string `json:"-"` // populated from URI param
	Message string `json:"message" binding:"required"`
}

func (r sendReq) validate() error { return nil }

func (r sendReq) toInput() chat.SendMessageInput {
	return chat.SendMessageInput{
		SessionID: r.ID,
		Message:   r.Message,
	}
}

// ---

type cleanupReq struct {
	MaxAge string `json:"max_age" binding:"omitempty"`
}

func (r cleanupReq) validate() error {
	if r.MaxAge == "" {
		return nil
	}
	d, err := time.ParseDuration(r.MaxAge)
	if err != nil {
		return errors.New("max_age must be a duration string such as 30m or 24h")
	}
	if d <= 0 {
		return errors.New("max_age must be positive")
	}
	return nil
}

func (r cleanupReq) toInput() chat.CleanupInput {
	var maxAge time.Duration
	if r.MaxAge != "" {
		maxAge, _ = time.ParseDuration(r.MaxAge)
	}
	return chat.CleanupInput{MaxAge: maxAge}
}

// --- Response DTOs ---

type createResp struct {
	SessionID string    `json:"session_id"`
	CreatedAt time.Time `json:"created_at"`
}

func (h *handler) newCreateResp(out chat.CreateSessionOutput) createResp {
	return createResp{
		SessionID: out.SessionID,
		CreatedAt: out.CreatedAt,
	}
}

type sendResp struct {
	SessionID  string `json:"session_id"`
	ExchangeID string `json:"exchange_id"`
	Response   string `json:"response"`
}

func (h *handler) newSendResp(out chat.SendMessageOutput) sendResp {
	return sendResp{
		SessionID:  out.SessionID,
		ExchangeID: out.ExchangeID,
		Response:   out.Response,
	}
}

type exchangeResp struct {
	ID              string    `json:"id"`
	UserInput       string    `json:"user_input"`
	AssistantOutput string    `json:"assistant_output"`
	CreatedAt       time.Time `json:"created_at"`
}

type historyResp struct {
	SessionID      string         `json:"session_id"`
	CreatedAt      time.Time      `json:"created_at"`
	LastActivityAt time.Time      `json:"last_activity_at"`
	MessageCount   int            `json:"message_count"`
	History        []exchangeResp `json:"history"`
}

func (h *handler) newHistoryResp(out chat.HistoryOutput) historyResp {
	history := make([]exchangeResp, len(out.Session.History))
	for i, ex := range out.Session.History {
		history[i] = exchangeResp{
			ID:              ex.ID,
			UserInput:       ex.UserInput,
			AssistantOutput: ex.AssistantOutput,
			CreatedAt:       ex.CreatedAt,
		}
	}
	return historyResp{
		SessionID:      out.Session.ID,
		CreatedAt:      out.Session.CreatedAt,
		LastActivityAt: out.Session.LastActivityAt,
		MessageCount:   len(out.Session.History),
		History:        history,
	}
}

type clearResp struct {
	SessionID string    `json:"session_id"`
	ClearedAt time.Time `json:"cleared_at"`
}

func (h *handler) newClearResp(out chat.ClearSessionOutput) clearResp {
	return clearResp{
		SessionID: out.SessionID,
		ClearedAt: out.ClearedAt,
	}
}

type deleteResp struct {
	SessionID string    `json:"session_id"`
	DeletedAt time.Time `json:"deleted_at"`
}

func (h *handler) newDeleteResp(out chat.DeleteSessionOutput) deleteResp {
	return deleteResp{
		SessionID: out.SessionID,
		DeletedAt: out.DeletedAt,
	}
}

type summaryResp struct {
	SessionID      string    `json:"session_id"`
	CreatedAt      time.Time `json:"created_at"`
	LastActivityAt time.Time `json:"last_activity_at"`
	MessageCount   int       `json:"message_count"`
}

type listResp struct {
	Sessions []summaryResp `json:"sessions"`
	Count    int           `json:"count"`
}

func (h *handler) newListResp(out chat.ListSessionsOutput) listResp {
	sessions := make([]summaryResp, len(out.Sessions))
	for i, s := range out.Sessions {
		sessions[i] = summaryResp{
			SessionID:      s.ID,
			CreatedAt:      s.CreatedAt,
			LastActivityAt: s.LastActivityAt,
			MessageCount:   s.MessageCount,
		}
	}
	return listResp{
		Sessions: sessions,
		Count:    out.Count,
	}
}

type cleanupResp struct {
	Cleaned   int `json:"cleaned"`
	Remaining int `json:"remaining"`
}

func (h *handler) newCleanupResp(out chat.CleanupOutput) cleanupResp {
	return cleanupResp{
		Cleaned:   out.Cleaned,
		Remaining: out.Remaining,
	}
}
