package convocacao

import "github.com/grsnucleo/portal-grs/internal/utils"

type CriarConvocacaoRequest struct {
	CodigoEmpresa     uint `json:"codigoempresa" validate:"required"`
	CodigoFuncionario uint `json:"codigofuncionario" validate:"required"`
	Detalhes
}

// AtualizarConvocacaoRequest mantém empresa e funcionário fixos
type AtualizarConvocacaoRequest struct {
	Detalhes
}

func (req CriarConvocacaoRequest) Modelo() Convocacao {
	c := Convocacao{
		CodigoEmpresa:     req.CodigoEmpresa,
		CodigoFuncionario: req.CodigoFuncionario,
		Detalhes:          req.Detalhes,
	}
	if c.Refazer == nil {
		nao := 0
		c.Refazer = &nao
	}
	return c
}

// Filtro corresponde aos parâmetros de GET /convocacoes.
// DataInicio e DataFim comparam com ultimopedido.
type Filtro struct {
	EmpresaID     *uint
	FuncionarioID *uint
	CodigoExame   *string
	Refazer       *int
	DataInicio    *utils.Data
	DataFim       *utils.Data
	Paginacao     utils.Paginacao
}
