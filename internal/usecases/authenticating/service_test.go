package authenticating

import (
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
	"github.com/vfg2006/working-capital-api/internal/config"
	"golang.org/x/crypto/bcrypt"
)

func testConfig(t *testing.T, password string) *config.Config {
	hash, err := bcrypt.GenerateFromPassword([]byte(password), bcrypt.MinCost)
	require.NoError(t, err)

	return &config.Config{
		Auth: config.Auth{
			AdminEmail:        "financeiro@empresa.com",
			AdminPasswordHash: string(hash),
		},
		SecretKey: "chave-de-teste",
	}
}

func TestLogin(t *testing.T) {
	service := NewService(testConfig(t, "senha-secreta"))

	tests := []struct {
		name     string
		email    string
		password string
		wantErr  error
	}{
		{
			name:     "Credenciais corretas geram token",
			email:    "financeiro@empresa.com",
			password: "senha-secreta",
		},
		{
			name:     "Email é normalizado antes da comparação",
			email:    "  Financeiro@Empresa.com ",
			password: "senha-secreta",
		},
		{
			name:     "Senha errada é rejeitada",
			email:    "financeiro@empresa.com",
			password: "senha-errada",
			wantErr:  ErrInvalidCredentials,
		},
		{
			name:     "Email desconhecido é rejeitado",
			email:    "outro@empresa.com",
			password: "senha-secreta",
			wantErr:  ErrInvalidCredentials,
		},
		{
			name:     "Email vazio é rejeitado",
			email:    "",
			password: "senha-secreta",
			wantErr:  ErrMissingRequiredData,
		},
		{
			name:     "Senha vazia é rejeitada",
			email:    "financeiro@empresa.com",
			password: "",
			wantErr:  ErrMissingRequiredData,
		},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			token, err := service.Login(tt.email, tt.password)

			if tt.wantErr != nil {
				require.Error(t, err)
				assert.ErrorIs(t, err, tt.wantErr)
				return
			}

			require.NoError(t, err)
			assert.NotEmpty(t, token)
		})
	}
}

func TestLogin_DisabledWithoutPasswordHash(t *testing.T) {
	cfg := testConfig(t, "qualquer")
	cfg.Auth.AdminPasswordHash = ""

	service := NewService(cfg)

	_, err := service.Login("financeiro@empresa.com", "qualquer")
	assert.ErrorIs(t, err, ErrLoginDisabled)
}

func TestValidateToken(t *testing.T) {
	cfg := testConfig(t, "senha-secreta")
	service := NewService(cfg)

	token, err := service.Login("financeiro@empresa.com", "senha-secreta")
	require.NoError(t, err)

	claims, err := service.ValidateToken(token)
	require.NoError(t, err)
	assert.Equal(t, "financeiro@empresa.com", claims.Email)
}

func TestValidateToken_RejectsTampering(t *testing.T) {
	cfg := testConfig(t, "senha-secreta")
	service := NewService(cfg)

	token, err := service.Login("financeiro@empresa.com", "senha-secreta")
	require.NoError(t, err)

	// token assinado com outra chave não passa
	otherCfg := testConfig(t, "senha-secreta")
	otherCfg.SecretKey = "outra-chave"
	otherService := NewService(otherCfg)

	_, err = otherService.ValidateToken(token)
	assert.ErrorIs(t, err, ErrInvalidToken)

	_, err = service.ValidateToken("nem.um.jwt")
	assert.ErrorIs(t, err, ErrInvalidToken)
}
