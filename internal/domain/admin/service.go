package admin

import (
	"context"
	"errors"
	"fmt"
	"net/http"
	"time"

	"github.com/google/uuid"

	"github.com/clientehm/api/internal/platform/apperr"
	"github.com/clientehm/api/internal/platform/auth"
	"github.com/clientehm/api/internal/platform/events"
)

const (
	MsgAdminNotFound      = "Administrador não encontrado."
	MsgEmailTaken         = "E-mail já cadastrado."
	MsgInvalidCredentials = "E-mail ou senha inválidos."
	MsgWrongKeyword       = "Palavra-chave incorreta."
	MsgWrongPassword      = "Senha atual incorreta."
	MsgLoginOK            = "Login realizado com sucesso."
)

type Hasher interface {
	Hash(secret string) (string, error)
	Matches(hash, secret string) (bool, error)
	CheckStrength(password string) error
}

type TokenIssuer interface {
	Issue(adminID uuid.UUID, email string) (string, time.Time, error)
}

type Service struct {
	repo   Repository
	hasher Hasher
	tokens TokenIssuer
	events events.Emitter
	now    func() time.Time
}

func NewService(repo Repository, hasher Hasher, tokens TokenIssuer, emitter events.Emitter) *Service {
	return &Service{repo: repo, hasher: hasher, tokens: tokens, events: emitter, now: time.Now}
}

// Register creates an administrator and returns its public view.
func (s *Service) Register(ctx context.Context, req *RegisterRequest) (*AdminData, error) {
	password := req.secret()
	if err := s.hasher.CheckStrength(password); err != nil {
		return nil, err
	}

	a := ToEntity(req)
	if err := s.ensureEmailFree(ctx, a.Email, uuid.Nil); err != nil {
		return nil, err
	}

	hash, err := s.hasher.Hash(password)
	if err != nil {
		return nil, err
	}
	a.SenhaHash = hash

	if req.PalavraChave != nil && *req.PalavraChave != "" {
		kh, err := s.hasher.Hash(*req.PalavraChave)
		if err != nil {
			return nil, err
		}
		a.PalavraChaveHash = &kh
	}

	if err := s.repo.Create(ctx, a); err != nil {
		return nil, err
	}
	s.events.Emit(ctx, "administrador.registrado", a.ID, map[string]string{"email": a.Email})
	return ToDTO(a), nil
}

// Login verifies credentials and issues a session token. Unknown e-mail
// and wrong password produce the same error.
func (s *Service) Login(ctx context.Context, req *LoginRequest) (*LoginResponse, error) {
	a, err := s.repo.GetByEmail(ctx, NormalizeEmail(req.Email))
	if errors.Is(err, apperr.ErrNotFound) {
		return nil, apperr.InvalidCredentials(MsgInvalidCredentials)
	}
	if err != nil {
		return nil, err
	}

	ok, err := s.hasher.Matches(a.SenhaHash, req.secret())
	if err != nil {
		return nil, err
	}
	if !ok {
		return nil, apperr.InvalidCredentials(MsgInvalidCredentials)
	}

	token, exp, err := s.tokens.Issue(a.ID, a.Email)
	if err != nil {
		return nil, err
	}

	now := s.now().UTC()
	if err := s.repo.TouchLastAccess(ctx, a.ID, now); err != nil {
		return nil, err
	}
	a.UltimoAcesso = &now

	return &LoginResponse{
		Mensagem:  MsgLoginOK,
		Codigo:    http.StatusOK,
		Token:     token,
		TipoToken: auth.TokenType,
		ExpiraEm:  exp,
		AdminData: ToDTO(a),
	}, nil
}

// VerifyKeyword checks the password-reset keyword of the account.
func (s *Service) VerifyKeyword(ctx context.Context, req *VerifyKeywordRequest) error {
	_, err := s.checkKeyword(ctx, req.Email, req.PalavraChave)
	return err
}

// ResetPassword re-verifies the keyword and replaces the password.
func (s *Service) ResetPassword(ctx context.Context, req *ResetPasswordRequest) error {
	a, err := s.checkKeyword(ctx, req.Email, req.PalavraChave)
	if err != nil {
		return err
	}
	if err := s.hasher.CheckStrength(req.NovaSenha); err != nil {
		return err
	}
	hash, err := s.hasher.Hash(req.NovaSenha)
	if err != nil {
		return err
	}
	a.SenhaHash = hash
	if err := s.repo.Update(ctx, a); err != nil {
		return err
	}
	s.events.Emit(ctx, "administrador.senha_redefinida", a.ID, nil)
	return nil
}

// Profile returns the administrator behind an authenticated principal.
func (s *Service) Profile(ctx context.Context, id uuid.UUID) (*AdminData, error) {
	a, err := s.repo.GetByID(ctx, id)
	if err != nil {
		return nil, err
	}
	return ToDTO(a), nil
}

// UpdateVerifiedProfile applies a profile change after checking the
// current password.
func (s *Service) UpdateVerifiedProfile(ctx context.Context, id uuid.UUID, req *VerifiedProfileUpdateRequest) (*AdminData, error) {
	a, err := s.repo.GetByID(ctx, id)
	if err != nil {
		return nil, err
	}

	ok, err := s.hasher.Matches(a.SenhaHash, req.SenhaAtual)
	if err != nil {
		return nil, err
	}
	if !ok {
		return nil, apperr.InvalidCredentials(MsgWrongPassword)
	}

	previousEmail := a.Email
	UpdateEntityFromDTO(req, a)
	if a.Email != previousEmail {
		if err := s.ensureEmailFree(ctx, a.Email, a.ID); err != nil {
			return nil, err
		}
	}

	if req.NovaSenha != nil && *req.NovaSenha != "" {
		if err := s.hasher.CheckStrength(*req.NovaSenha); err != nil {
			return nil, err
		}
		hash, err := s.hasher.Hash(*req.NovaSenha)
		if err != nil {
			return nil, err
		}
		a.SenhaHash = hash
	}
	if req.NovaPalavraChave != nil && *req.NovaPalavraChave != "" {
		kh, err := s.hasher.Hash(*req.NovaPalavraChave)
		if err != nil {
			return nil, err
		}
		a.PalavraChaveHash = &kh
	}

	if err := s.repo.Update(ctx, a); err != nil {
		return nil, err
	}
	s.events.Emit(ctx, "administrador.perfil_atualizado", a.ID, nil)
	return ToDTO(a), nil
}

// Lookup returns the stored administrator. Used to snapshot an
// administrator as the responsible party of a consultation.
func (s *Service) Lookup(ctx context.Context, id uuid.UUID) (*Administrator, error) {
	return s.repo.GetByID(ctx, id)
}

func (s *Service) checkKeyword(ctx context.Context, email, keyword string) (*Administrator, error) {
	a, err := s.repo.GetByEmail(ctx, NormalizeEmail(email))
	if err != nil {
		return nil, err
	}
	if a.PalavraChaveHash == nil {
		return nil, apperr.InvalidCredentials(MsgWrongKeyword)
	}
	ok, err := s.hasher.Matches(*a.PalavraChaveHash, keyword)
	if err != nil {
		return nil, fmt.Errorf("verify keyword: %w", err)
	}
	if !ok {
		return nil, apperr.InvalidCredentials(MsgWrongKeyword)
	}
	return a, nil
}

func (s *Service) ensureEmailFree(ctx context.Context, email string, self uuid.UUID) error {
	existing, err := s.repo.GetByEmail(ctx, email)
	if errors.Is(err, apperr.ErrNotFound) {
		return nil
	}
	if err != nil {
		return err
	}
	if existing.ID != self {
		return apperr.Duplicate(MsgEmailTaken)
	}
	return nil
}
