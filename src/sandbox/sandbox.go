package sandbox

import (
	"log"

	"dompet-gateway/src/models"
	"dompet-gateway/src/tokenstore"

	"github.com/google/uuid"
)

// Public tokens model a completed institution login; the sandbox keeps them
// deliberately short-lived.
const publicTokenTTLSeconds = 1800

// Service mints single-use public tokens against the sandbox dataset, standing
// in for the institution-login step of a real linking flow.
type Service struct {
	data         *Dataset
	publicTokens *tokenstore.Store
}

func NewService(data *Dataset, publicTokens *tokenstore.Store) *Service {
	return &Service{data: data, publicTokens: publicTokens}
}

// CreatePublicToken simulates an end user completing the institution login UI
// and returns the resulting single-use public token.
func (s *Service) CreatePublicToken(userID string) (string, error) {
	if !s.data.HasUser(userID) {
		return "", models.InvalidRequest("unknown sandbox user")
	}

	token := "public-sandbox-" + uuid.NewString()
	s.publicTokens.Put(token, tokenstore.Record{
		Context:    tokenstore.UserContext{UserID: userID},
		TTLSeconds: publicTokenTTLSeconds,
	})
	return token, nil
}

// SeedPublicTokens installs the well-known fixture tokens used by sandbox
// walkthroughs. They carry no expiry so a fresh checkout works at any date.
func (s *Service) SeedPublicTokens() {
	s.publicTokens.Put("good_public_token_for_budi", tokenstore.Record{
		Context: tokenstore.UserContext{UserID: "user_budi_123"},
	})
	log.Println("INFO: Seeded sandbox public tokens")
}
