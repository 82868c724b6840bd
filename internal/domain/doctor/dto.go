package doctor

import "time"

type CreateRequest struct {
	NomeCompleto        string  `json:"nomeCompleto" validate:"required,notblank,min=3,max=200" mensagem:"Nome completo deve ter no mínimo 3 caracteres"`
	CRM                 string  `json:"crm" validate:"required,notblank,min=4,max=30" mensagem:"CRM inválido"`
	Especialidade       string  `json:"especialidade" validate:"required,notblank,max=120" mensagem:"Especialidade é obrigatória"`
	ResumoEspecialidade *string `json:"resumoEspecialidade" validate:"omitempty,max=1000" mensagem:"Resumo da especialidade não pode exceder 1000 caracteres"`
	RQE                 *string `json:"rqe" validate:"omitempty,max=30" mensagem:"RQE inválido"`
}

// UpdateRequest is a partial update: nil or blank fields are left as they
// are.
type UpdateRequest struct {
	NomeCompleto        *string `json:"nomeCompleto" validate:"omitempty,min=3,max=200" mensagem:"Nome completo deve ter no mínimo 3 caracteres"`
	CRM                 *string `json:"crm" validate:"omitempty,min=4,max=30" mensagem:"CRM inválido"`
	Especialidade       *string `json:"especialidade" validate:"omitempty,max=120" mensagem:"Especialidade não pode exceder 120 caracteres"`
	ResumoEspecialidade *string `json:"resumoEspecialidade" validate:"omitempty,max=1000" mensagem:"Resumo da especialidade não pode exceder 1000 caracteres"`
	RQE                 *string `json:"rqe" validate:"omitempty,max=30" mensagem:"RQE inválido"`
}

type DTO struct {
	ID                  string     `json:"id"`
	NomeCompleto        string     `json:"nomeCompleto"`
	CRM                 string     `json:"crm"`
	Especialidade       string     `json:"especialidade"`
	ResumoEspecialidade *string    `json:"resumoEspecialidade,omitempty"`
	RQE                 *string    `json:"rqe,omitempty"`
	DeletedAt           *time.Time `json:"deletedAt,omitempty"`
	CreatedAt           time.Time  `json:"createdAt"`
	UpdatedAt           time.Time  `json:"updatedAt"`
}
