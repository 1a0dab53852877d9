package workflows

import (
	"context"
	"fmt"
	"strings"
	"time"

	"go.uber.org/zap"

	"careloop/api"
	"careloop/models"
	"careloop/session"
	"careloop/ui"
)

// Responder produces a counterpart's reply in demo deployments. A nil
// Responder (or AutoReply off) gives production semantics: messages go to the
// backend and nothing answers locally.
type Responder interface {
	Reply(prompt string, from models.SenderRole) string
}

// ChatService owns the chat modal for both roles.
type ChatService interface {
	// OpenUserChat resolves the thread between the logged-in user and a
	// caregiver, loads history and opens the modal.
	OpenUserChat(ctx context.Context, caregiverID int, caregiverName string) error
	// OpenCaregiverChat does the same from the caregiver side, locating the
	// user through the caregiver's job lists by name.
	OpenCaregiverChat(ctx context.Context, userName string) error
	// LoadMessages re-fetches and renders the open thread.
	LoadMessages(ctx context.Context)
	// Send appends a message to the open thread and reloads it. Empty input
	// is a no-op.
	Send(ctx context.Context, text string) error
	// Close dismisses the modal and forgets the thread context.
	Close()
}

// DefaultChatService is the stock ChatService implementation.
type DefaultChatService struct {
	Messages api.MessageAPI
	Jobs     api.JobAPI
	Session  *session.Manager
	State    *State
	UI       ui.Surface
	Log      *zap.Logger

	// Demo auto-reply knobs, wired from configuration.
	AutoReply      bool
	AutoReplyDelay time.Duration
	Responder      Responder
}

func (s *DefaultChatService) OpenUserChat(ctx context.Context, caregiverID int, caregiverName string) error {
	user := s.Session.CurrentUser()
	if user == nil {
		s.UI.Alert("Please login first.")
		return ErrNotAuthenticated
	}
	threadID, err := s.Messages.ResolveThread(ctx, user.ID, caregiverID)
	if err != nil {
		s.Log.Warn("thread resolution failed",
			zap.Int("userID", user.ID), zap.Int("caregiverID", caregiverID), zap.Error(err))
		s.UI.RenderError(ui.RegionChatMessages, fmt.Sprintf("Start a conversation with %s.", caregiverName))
		s.UI.OpenModal(ui.ModalChat)
		return err
	}
	s.State.SetActiveChat(ChatContext{
		ThreadID: threadID,
		Role:     models.RoleUser,
		PeerID:   caregiverID,
		PeerName: caregiverName,
	})
	s.LoadMessages(ctx)
	s.UI.OpenModal(ui.ModalChat)
	return nil
}

func (s *DefaultChatService) OpenCaregiverChat(ctx context.Context, userName string) error {
	caregiver := s.Session.CurrentCaregiver()
	if caregiver == nil {
		s.UI.Alert("Please login first.")
		return ErrNotAuthenticated
	}
	userID, err := s.findUserByName(ctx, caregiver.ID, userName)
	if err != nil {
		s.Log.Warn("chat peer lookup failed", zap.String("userName", userName), zap.Error(err))
		s.UI.Alert("Could not find this client in your jobs.")
		return err
	}
	threadID, err := s.Messages.ResolveThread(ctx, userID, caregiver.ID)
	if err != nil {
		s.Log.Warn("thread resolution failed",
			zap.Int("userID", userID), zap.Int("caregiverID", caregiver.ID), zap.Error(err))
		s.UI.RenderError(ui.RegionChatMessages, fmt.Sprintf("Start a conversation with %s.", userName))
		s.UI.OpenModal(ui.ModalChat)
		return err
	}
	s.State.SetActiveChat(ChatContext{
		ThreadID: threadID,
		Role:     models.RoleCaregiver,
		PeerID:   userID,
		PeerName: userName,
	})
	s.LoadMessages(ctx)
	s.UI.OpenModal(ui.ModalChat)
	return nil
}

// findUserByName scans the caregiver's open and accepted jobs for a client
// with the given display name. Chat from the caregiver side is only reachable
// through a job card, so the name is always expected to be there.
func (s *DefaultChatService) findUserByName(ctx context.Context, caregiverID int, userName string) (int, error) {
	target := strings.TrimSpace(userName)
	if jobs, err := s.Jobs.JobsForCaregiver(ctx, caregiverID); err == nil {
		for _, j := range jobs {
			if strings.EqualFold(j.UserName, target) {
				return j.UserID, nil
			}
		}
	}
	accepted, err := s.Jobs.AcceptedJobs(ctx, caregiverID)
	if err != nil {
		return 0, err
	}
	for _, j := range accepted {
		if strings.EqualFold(j.UserName, target) {
			return j.UserID, nil
		}
	}
	return 0, fmt.Errorf("no job found for client %q", userName)
}

func (s *DefaultChatService) LoadMessages(ctx context.Context) {
	chat, ok := s.State.ActiveChat()
	if !ok {
		return
	}
	messages, err := s.Messages.ThreadMessages(ctx, chat.ThreadID)
	if err != nil {
		s.Log.Warn("message load failed", zap.Int("threadID", chat.ThreadID), zap.Error(err))
		s.UI.RenderError(ui.RegionChatMessages, "Failed to load messages.")
		return
	}
	// Guard against a slow load racing a thread switch.
	if current, ok := s.State.ActiveChat(); !ok || current.ThreadID != chat.ThreadID {
		return
	}

	if len(messages) == 0 {
		s.UI.RenderList(ui.RegionChatMessages, []string{
			fmt.Sprintf("Start a conversation with %s.", chat.PeerName),
		})
		return
	}
	lines := make([]string, 0, len(messages))
	for _, m := range messages {
		speaker := chat.PeerName
		if m.SenderRole == chat.Role {
			speaker = "You"
		}
		lines = append(lines, fmt.Sprintf("%s  %s: %s", m.SentAt.Format("15:04"), speaker, m.Text))
	}
	s.UI.RenderList(ui.RegionChatMessages, lines)
}

func (s *DefaultChatService) Send(ctx context.Context, text string) error {
	text = strings.TrimSpace(text)
	if text == "" {
		return nil
	}
	chat, ok := s.State.ActiveChat()
	if !ok {
		return ErrNoSelection
	}
	senderID, err := s.identityID(chat.Role)
	if err != nil {
		return err
	}

	msg := models.MessageSend{
		ThreadID:     chat.ThreadID,
		SenderType:   chat.Role,
		SenderID:     senderID,
		ReceiverType: chat.Role.Opposite(),
		ReceiverID:   chat.PeerID,
		MessageText:  text,
	}
	if err := s.Messages.SendMessage(ctx, msg); err != nil {
		s.Log.Warn("message send failed", zap.Int("threadID", chat.ThreadID), zap.Error(err))
		s.UI.Alert("Failed to send message. Please try again.")
		return err
	}
	s.LoadMessages(ctx)

	if s.AutoReply && s.Responder != nil {
		s.scheduleAutoReply(chat, senderID, text)
	}
	return nil
}

// scheduleAutoReply posts a canned counterpart message after the configured
// delay. The reply is dropped when the thread is no longer the open one.
func (s *DefaultChatService) scheduleAutoReply(chat ChatContext, senderID int, prompt string) {
	time.AfterFunc(s.AutoReplyDelay, func() {
		current, ok := s.State.ActiveChat()
		if !ok || current.ThreadID != chat.ThreadID {
			return
		}
		reply := models.MessageSend{
			ThreadID:     chat.ThreadID,
			SenderType:   chat.Role.Opposite(),
			SenderID:     chat.PeerID,
			ReceiverType: chat.Role,
			ReceiverID:   senderID,
			MessageText:  s.Responder.Reply(prompt, chat.Role),
		}
		ctx := context.Background()
		if err := s.Messages.SendMessage(ctx, reply); err != nil {
			s.Log.Debug("auto-reply send failed", zap.Int("threadID", chat.ThreadID), zap.Error(err))
			return
		}
		s.LoadMessages(ctx)
	})
}

func (s *DefaultChatService) identityID(role models.SenderRole) (int, error) {
	switch role {
	case models.RoleUser:
		if u := s.Session.CurrentUser(); u != nil {
			return u.ID, nil
		}
	case models.RoleCaregiver:
		if c := s.Session.CurrentCaregiver(); c != nil {
			return c.ID, nil
		}
	}
	return 0, ErrNotAuthenticated
}

func (s *DefaultChatService) Close() {
	s.UI.CloseModal(ui.ModalChat)
	s.State.ClearChat()
}
