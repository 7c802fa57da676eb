package cli

import (
	"context"
	"fmt"
	"net/http"

	"github.com/Sakee8848/property-management-ai/internal/client/api"
	"github.com/Sakee8848/property-management-ai/internal/client/models"
)

// getSimpleText and getPassword are indirections used to facilitate testing.
var getSimpleText = GetSimpleText
var getPassword = GetPassword

// Login prompts for credentials and authenticates through the session
// manager. Authentication failures carry a displayable message.
func (a *App) Login(ctx context.Context) error {
	username, err := getSimpleText(a.reader, "Enter username", a.out)
	if err != nil {
		return err
	}

	password, err := getPassword(a.out)
	if err != nil {
		return err
	}

	if err := a.sessions.Login(ctx, username, password); err != nil {
		return err
	}

	fmt.Fprintln(a.out, "Logged in.")
	return nil
}

// Register prompts for a registration payload and submits it. A successful
// registration creates no session; the user still has to log in.
func (a *App) Register(ctx context.Context) error {
	username, err := getSimpleText(a.reader, "Enter username", a.out)
	if err != nil {
		return err
	}

	email, err := getSimpleText(a.reader, "Enter email", a.out)
	if err != nil {
		return err
	}

	password, err := getPassword(a.out)
	if err != nil {
		return err
	}

	payload := models.RegisterRequest{Username: username, Email: email, Password: password}
	if err := a.sessions.Register(ctx, payload); err != nil {
		return err
	}

	fmt.Fprintln(a.out, "Registered, you can log in now.")
	return nil
}

func (a *App) Logout() {
	a.sessions.Logout()
	fmt.Fprintln(a.out, "Logged out.")
}

func (a *App) Me() {
	p := a.sessions.Profile()
	if p == nil {
		fmt.Fprintln(a.out, "Not logged in.")
		return
	}
	fmt.Fprintf(a.out, "%s <%s> role=%s property=%d\n", p.Username, p.Email, p.Role, p.PropertyID)
}

// Chat sends one message to the assistant and prints the reply with its
// knowledge-base sources.
func (a *App) Chat(ctx context.Context, content string) error {
	payload := models.SendMessageRequest{Content: content}
	resp, err := a.pipeline.Do(ctx, api.NewRequest(http.MethodPost, "/api/chat/send", payload))
	if err != nil {
		return err
	}

	var msg models.ChatMessage
	if err := resp.Decode(&msg); err != nil {
		return err
	}

	fmt.Fprintln(a.out, msg.Content)
	for _, src := range msg.Sources {
		fmt.Fprintf(a.out, "  source: %s (%.2f)\n", src.Title, src.Score)
	}
	return nil
}

func (a *App) Conversations(ctx context.Context) error {
	resp, err := a.pipeline.Do(ctx, api.NewRequest(http.MethodGet, "/api/chat/conversations", nil))
	if err != nil {
		return err
	}

	var conversations []models.ConversationSummary
	if err := resp.Decode(&conversations); err != nil {
		return err
	}

	if len(conversations) == 0 {
		fmt.Fprintln(a.out, "No conversations.")
		return nil
	}
	for _, c := range conversations {
		fmt.Fprintf(a.out, "#%d %s [%s] %d messages\n", c.ID, c.Title, c.Status, c.MessageCount)
	}
	return nil
}

func (a *App) Documents(ctx context.Context) error {
	resp, err := a.pipeline.Do(ctx, api.NewRequest(http.MethodGet, "/api/documents", nil))
	if err != nil {
		return err
	}

	var documents []models.DocumentSummary
	if err := resp.Decode(&documents); err != nil {
		return err
	}

	if len(documents) == 0 {
		fmt.Fprintln(a.out, "No documents.")
		return nil
	}
	for _, d := range documents {
		fmt.Fprintf(a.out, "#%d %s (%s)\n", d.ID, d.Title, d.Category)
	}
	return nil
}

func (a *App) Bills(ctx context.Context) error {
	resp, err := a.pipeline.Do(ctx, api.NewRequest(http.MethodGet, "/api/payments/bills", nil))
	if err != nil {
		return err
	}

	var bills []models.Bill
	if err := resp.Decode(&bills); err != nil {
		return err
	}

	if len(bills) == 0 {
		fmt.Fprintln(a.out, "No bills.")
		return nil
	}
	for _, b := range bills {
		fmt.Fprintf(a.out, "%s %s %s: %.2f (late fee %.2f, total %.2f) due %s [%s]\n",
			b.BillNumber, b.BillingPeriod, b.FeeType, b.Amount, b.LateFee, b.TotalAmount, b.DueDate, b.Status)
	}
	return nil
}
