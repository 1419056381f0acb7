package absenteismo

import "github.com/grsnucleo/portal-grs/internal/utils"

type CriarAbsenteismoRequest struct {
	MatriculaFunc string `json:"matricula_func" validate:"required,max=30"`
	Atestado
}

// AtualizarAbsenteismoRequest não troca a matrícula do registro
type AtualizarAbsenteismoRequest struct {
	Atestado
}

// Filtro corresponde aos parâmetros de GET /absenteismos.
// CID é busca parcial em cid_principal.
type Filtro struct {
	Matricula    *string
	DtInicio     *utils.Data
	DtFim        *utils.Data
	TipoAtestado *int
	CID          *string
	Paginacao    utils.Paginacao
}
