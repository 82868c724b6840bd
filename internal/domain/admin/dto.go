package admin

import "time"

// RegisterRequest creates an administrator. The password is accepted as
// senha or password; its strength is checked by the service.
type RegisterRequest struct {
	Nome         *string `json:"nome" validate:"omitempty,max=150" mensagem:"Nome não pode exceder 150 caracteres"`
	Email        string  `json:"email" validate:"required,email,max=255" mensagem:"E-mail inválido"`
	Senha        string  `json:"senha" validate:"required_without=Password" mensagem:"Senha é obrigatória"`
	Password     string  `json:"password"`
	PalavraChave *string `json:"palavraChave" validate:"omitempty,min=4,max=72" mensagem:"Palavra-chave deve ter entre 4 e 72 caracteres"`
}

func (r *RegisterRequest) secret() string { return pick(r.Senha, r.Password) }

type LoginRequest struct {
	Email    string `json:"email" validate:"required,email" mensagem:"E-mail inválido"`
	Senha    string `json:"senha" validate:"required_without=Password" mensagem:"Senha é obrigatória"`
	Password string `json:"password"`
}

func (r *LoginRequest) secret() string { return pick(r.Senha, r.Password) }

type VerifyKeywordRequest struct {
	Email        string `json:"email" validate:"required,email" mensagem:"E-mail inválido"`
	PalavraChave string `json:"palavraChave" validate:"required,notblank" mensagem:"Palavra-chave é obrigatória"`
}

type ResetPasswordRequest struct {
	Email        string `json:"email" validate:"required,email" mensagem:"E-mail inválido"`
	PalavraChave string `json:"palavraChave" validate:"required,notblank" mensagem:"Palavra-chave é obrigatória"`
	NovaSenha    string `json:"novaSenha" validate:"required" mensagem:"Nova senha é obrigatória"`
}

// VerifiedProfileUpdateRequest changes the caller's own profile after
// re-entering the current password. Nil or blank fields are left as they
// are.
type VerifiedProfileUpdateRequest struct {
	SenhaAtual       string  `json:"senhaAtual" validate:"required" mensagem:"Senha atual é obrigatória"`
	Nome             *string `json:"nome" validate:"omitempty,max=150" mensagem:"Nome não pode exceder 150 caracteres"`
	Email            *string `json:"email" validate:"omitempty,emailorblank,max=255" mensagem:"E-mail inválido"`
	NovaSenha        *string `json:"novaSenha"`
	NovaPalavraChave *string `json:"novaPalavraChave" validate:"omitempty,min=4,max=72" mensagem:"Palavra-chave deve ter entre 4 e 72 caracteres"`
}

// AdminData is the public view of an administrator.
type AdminData struct {
	ID           string     `json:"id"`
	Nome         string     `json:"nome"`
	Email        string     `json:"email"`
	UltimoAcesso *time.Time `json:"ultimoAcesso,omitempty"`
	CreatedAt    time.Time  `json:"createdAt"`
	UpdatedAt    time.Time  `json:"updatedAt"`
}

// LoginResponse is written to the client as is.
type LoginResponse struct {
	Mensagem  string     `json:"mensagem"`
	Codigo    int        `json:"codigo"`
	Token     string     `json:"token"`
	TipoToken string     `json:"tipoToken"`
	ExpiraEm  time.Time  `json:"expiraEm"`
	AdminData *AdminData `json:"adminData"`
}

func pick(primary, alias string) string {
	if primary != "" {
		return primary
	}
	return alias
}
