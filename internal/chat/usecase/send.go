package usecase

import (
	"context"
	"errors"
	"strings"

	"workspace-chat/internal/calendar"
	"workspace-chat/internal/chat"
	"workspace-chat/internal/model"
	"workspace-chat/internal/workspace"
	"workspace-chat/pkg/aiprovider"
)

const signInPrompt = "Please sign in with Google to use this command."

// Send routes one user message. The exact command words "calendar", "drive",
// "tasks", "youtube" and "email" run the matching Workspace experiment;
// everything else is answered by an AI provider.
func (uc *implUseCase) Send(ctx context.Context, sc model.Scope, input chat.SendInput) (chat.SendOutput, error) {
	text := strings.TrimSpace(input.Message)
	if text == "" {
		return chat.SendOutput{}, chat.ErrEmptyMessage
	}

	switch strings.ToLower(text) {
	case "calendar":
		out, err := uc.calendarUC.WeeklyAgenda(ctx, sc, calendar.WeeklyAgendaInput{WeekOffset: 0})
		if err != nil {
			return uc.replyForWorkspaceErr(ctx, "calendar", err)
		}
		return uc.dataReply(chat.ReplyTypeCalendar, "Here is your week.", out), nil
	case "drive":
		out, err := uc.wsUC.RecentFiles(ctx, sc)
		if err != nil {
			return uc.replyForWorkspaceErr(ctx, "drive", err)
		}
		return uc.dataReply(chat.ReplyTypeDrive, "Your recent Drive files.", out), nil
	case "tasks":
		out, err := uc.wsUC.TaskOverview(ctx, sc)
		if err != nil {
			return uc.replyForWorkspaceErr(ctx, "tasks", err)
		}
		return uc.dataReply(chat.ReplyTypeTasks, "Your task lists.", out), nil
	case "youtube":
		out, err := uc.wsUC.Playlists(ctx, sc)
		if err != nil {
			return uc.replyForWorkspaceErr(ctx, "youtube", err)
		}
		return uc.dataReply(chat.ReplyTypeYouTube, "Your YouTube playlists.", out), nil
	case "email":
		out, err := uc.wsUC.RecentEmail(ctx, sc)
		if err != nil {
			return uc.replyForWorkspaceErr(ctx, "email", err)
		}
		return uc.dataReply(chat.ReplyTypeEmail, "Your latest email.", out), nil
	}

	return uc.askAI(ctx, input)
}

func (uc *implUseCase) askAI(ctx context.Context, input chat.SendInput) (chat.SendOutput, error) {
	resp, err := uc.ai.Chat(ctx, input.Provider, &aiprovider.Request{
		Model: input.Model,
		Messages: []aiprovider.Message{
			{Role: "user", Content: input.Message},
		},
	})
	if err != nil {
		uc.l.Errorf(ctx, "chat.usecase.Send.ai.Chat: %v", err)
		return chat.SendOutput{}, chat.ErrProviderFailed
	}

	return uc.textReply(resp.Text), nil
}

// replyForWorkspaceErr turns a missing Google token into a visible bot reply
// instead of an HTTP error, so the chat window can prompt for sign-in.
func (uc *implUseCase) replyForWorkspaceErr(ctx context.Context, command string, err error) (chat.SendOutput, error) {
	if errors.Is(err, workspace.ErrMissingGoogleToken) || errors.Is(err, calendar.ErrMissingGoogleToken) {
		return uc.textReply(signInPrompt), nil
	}
	uc.l.Errorf(ctx, "chat.usecase.Send.%s: %v", command, err)
	return chat.SendOutput{}, err
}

func (uc *implUseCase) textReply(text string) chat.SendOutput {
	return uc.dataReply(chat.ReplyTypeText, text, nil)
}

func (uc *implUseCase) dataReply(replyType, text string, data any) chat.SendOutput {
	return chat.SendOutput{
		Reply: chat.Message{
			ID:        uc.newID(),
			Sender:    "bot",
			Text:      text,
			Type:      replyType,
			Data:      data,
			Timestamp: uc.now(),
		},
	}
}
