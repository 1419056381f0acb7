package funcionario

import "github.com/grsnucleo/portal-grs/internal/utils"

type CriarFuncionarioRequest struct {
	CodigoEmpresa uint   `json:"codigoempresa" validate:"required"`
	Nome          string `json:"nome" validate:"required,max=120"`
	Dados
}

// AtualizarFuncionarioRequest não permite trocar a empresa do funcionário
type AtualizarFuncionarioRequest struct {
	Nome *string `json:"nome" validate:"omitempty,max=120" parcial:"naonulo"`
	Dados
}

func (req CriarFuncionarioRequest) Modelo() Funcionario {
	f := Funcionario{
		CodigoEmpresa: req.CodigoEmpresa,
		Nome:          req.Nome,
		Dados:         req.Dados,
	}
	return f
}

// Filtro corresponde aos parâmetros de GET /funcionarios
type Filtro struct {
	EmpresaID *uint
	Paginacao utils.Paginacao
}
