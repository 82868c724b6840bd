package patient

import "time"

const dateLayout = "2006-01-02"

type CreateRequest struct {
	NomeCompleto   string  `json:"nomeCompleto" validate:"required,notblank,min=3,max=200" mensagem:"Nome completo deve ter no mínimo 3 caracteres"`
	CPF            string  `json:"cpf" validate:"required,notblank,min=11,max=14" mensagem:"CPF inválido"`
	DataNascimento *string `json:"dataNascimento" validate:"omitempty,datetime=2006-01-02" mensagem:"Data de nascimento deve estar no formato AAAA-MM-DD"`
	Sexo           *string `json:"sexo" validate:"omitempty,max=20"`
	Telefone       *string `json:"telefone" validate:"omitempty,max=30"`
	Email          *string `json:"email" validate:"omitempty,emailorblank,max=255" mensagem:"E-mail inválido"`
	Endereco       *string `json:"endereco" validate:"omitempty,max=500"`
}

// UpdateRequest is a partial update. The CPF cannot be changed.
type UpdateRequest struct {
	NomeCompleto   *string `json:"nomeCompleto" validate:"omitempty,min=3,max=200" mensagem:"Nome completo deve ter no mínimo 3 caracteres"`
	DataNascimento *string `json:"dataNascimento" validate:"omitempty,datetime=2006-01-02" mensagem:"Data de nascimento deve estar no formato AAAA-MM-DD"`
	Sexo           *string `json:"sexo" validate:"omitempty,max=20"`
	Telefone       *string `json:"telefone" validate:"omitempty,max=30"`
	Email          *string `json:"email" validate:"omitempty,emailorblank,max=255" mensagem:"E-mail inválido"`
	Endereco       *string `json:"endereco" validate:"omitempty,max=500"`
}

type DTO struct {
	ID             string     `json:"id"`
	NomeCompleto   string     `json:"nomeCompleto"`
	CPF            string     `json:"cpf"`
	DataNascimento *string    `json:"dataNascimento,omitempty"`
	Sexo           *string    `json:"sexo,omitempty"`
	Telefone       *string    `json:"telefone,omitempty"`
	Email          *string    `json:"email,omitempty"`
	Endereco       *string    `json:"endereco,omitempty"`
	ProntuarioID   string     `json:"prontuarioId,omitempty"`
	DeletedAt      *time.Time `json:"deletedAt,omitempty"`
	CreatedAt      time.Time  `json:"createdAt"`
	UpdatedAt      time.Time  `json:"updatedAt"`
}

type RecordDTO struct {
	ID               string    `json:"id"`
	PacienteID       string    `json:"pacienteId"`
	PacienteNome     string    `json:"pacienteNomeCompleto,omitempty"`
	PacienteCPF      string    `json:"pacienteCpf,omitempty"`
	NumeroProntuario string    `json:"numeroProntuario"`
	Status           string    `json:"status"`
	CreatedAt        time.Time `json:"createdAt"`
	UpdatedAt        time.Time `json:"updatedAt"`
}
