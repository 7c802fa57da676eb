package mock

import (
	"context"
	"net/url"
	"time"

	"github.com/golang-jwt/jwt/v5"
	"github.com/google/uuid"

	"github.com/Sakee8848/property-management-ai/internal/client/api"
	"github.com/Sakee8848/property-management-ai/internal/client/models"
)

// demoSigningKey signs fabricated tokens. Demo-only; the live backend owns
// real token issuance.
var demoSigningKey = []byte("property-ai-demo-secret")

// login always succeeds: a fresh token derived from the current time plus a
// profile echoing the supplied username with default resident fields.
func (b *Backend) login(ctx context.Context, req *api.Request) (*api.Response, error) {
	username := "demo_user"
	if form, okForm := req.Payload.(url.Values); okForm {
		if v := form.Get("username"); v != "" {
			username = v
		}
	}

	return ok(models.LoginResult{
		AccessToken: b.issueToken(username),
		TokenType:   "bearer",
		User: models.UserProfile{
			ID:         1,
			Username:   username,
			Email:      username + "@example.com",
			Role:       "owner",
			PropertyID: 1,
		},
	})
}

// issueToken mints a short demo JWT whose issued-at claim makes each token
// unique per login.
func (b *Backend) issueToken(username string) string {
	now := b.now()
	token := jwt.NewWithClaims(jwt.SigningMethodHS256, jwt.MapClaims{
		"sub": username,
		"iat": now.Unix(),
		"jti": uuid.NewString(),
	})
	signed, err := token.SignedString(demoSigningKey)
	if err != nil {
		// HS256 signing over a byte key cannot fail at runtime; fall back
		// to a timestamp token to keep the simulated flow alive.
		return "mock-token-" + now.Format("20060102150405.000")
	}
	return signed
}

// register acknowledges without validating anything; no session is created.
func (b *Backend) register(ctx context.Context, req *api.Request) (*api.Response, error) {
	return ok(models.RegisterResult{Success: true})
}

// profile returns the canned demo resident.
func (b *Backend) profile(ctx context.Context, req *api.Request) (*api.Response, error) {
	return ok(models.UserProfile{
		ID:         1,
		Username:   "demo_user",
		Email:      "demo@example.com",
		Role:       "owner",
		PropertyID: 1,
	})
}

// sendMessage answers from the canned reply table (exact match only) and
// falls back to the generic assistant reply for everything else.
func (b *Backend) sendMessage(ctx context.Context, req *api.Request) (*api.Response, error) {
	var payload models.SendMessageRequest
	if err := decodePayload(req.Payload, &payload); err != nil {
		return nil, err
	}

	reply, found := cannedReplies[payload.Content]
	if !found {
		reply = fallbackReply
	}

	return ok(models.ChatMessage{
		ID:        uuid.NewString(),
		Role:      models.RoleAssistant,
		Content:   reply.content,
		Sources:   reply.sources,
		CreatedAt: b.now().Format(time.RFC3339),
	})
}

func (b *Backend) conversations(ctx context.Context, req *api.Request) (*api.Response, error) {
	return ok([]models.ConversationSummary{})
}

func (b *Backend) documents(ctx context.Context, req *api.Request) (*api.Response, error) {
	return ok([]models.DocumentSummary{})
}

// bills returns the single sample record; TotalAmount always equals
// Amount plus LateFee.
func (b *Backend) bills(ctx context.Context, req *api.Request) (*api.Response, error) {
	return ok([]models.Bill{sampleBill})
}
