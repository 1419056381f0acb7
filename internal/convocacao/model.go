package convocacao

import "github.com/grsnucleo/portal-grs/internal/utils"

// Convocacao é o exame periódico exigido de um funcionário
type Convocacao struct {
	ID                uint `gorm:"column:id;primaryKey;autoIncrement" json:"id"`
	CodigoEmpresa     uint `gorm:"column:codigoempresa;not null;index" json:"codigoempresa"`
	CodigoFuncionario uint `gorm:"column:codigofuncionario;not null;index" json:"codigofuncionario"`
	Detalhes
}

func (Convocacao) TableName() string {
	return "convocacoes"
}

// Detalhes guarda os dados copiados do cadastro e do exame.
// Periodicidade em meses; Refazer 0 não, 1 sim.
type Detalhes struct {
	NomeAbreviado       *string     `gorm:"column:nomeabreviado;size:100" json:"nomeabreviado" validate:"omitempty,max=100"`
	Unidade             *string     `gorm:"column:unidade;size:150" json:"unidade" validate:"omitempty,max=150"`
	Cidade              *string     `gorm:"column:cidade;size:100" json:"cidade" validate:"omitempty,max=100"`
	Estado              *string     `gorm:"column:estado;size:50" json:"estado" validate:"omitempty,max=50"`
	Bairro              *string     `gorm:"column:bairro;size:100" json:"bairro" validate:"omitempty,max=100"`
	Endereco            *string     `gorm:"column:endereco;size:200" json:"endereco" validate:"omitempty,max=200"`
	Cep                 *string     `gorm:"column:cep;size:20" json:"cep" validate:"omitempty,max=20"`
	CNPJUnidade         *string     `gorm:"column:cnpjunidade;size:20" json:"cnpjunidade" validate:"omitempty,max=20"`
	Setor               *string     `gorm:"column:setor;size:100" json:"setor" validate:"omitempty,max=100"`
	Cargo               *string     `gorm:"column:cargo;size:100" json:"cargo" validate:"omitempty,max=100"`
	CPFFuncionario      *string     `gorm:"column:cpffuncionario;size:20" json:"cpffuncionario" validate:"omitempty,max=20"`
	Matricula           *string     `gorm:"column:matricula;size:50" json:"matricula" validate:"omitempty,max=50"`
	DataAdmissao        *utils.Data `gorm:"column:dataadmissao" json:"dataadmissao"`
	Nome                *string     `gorm:"column:nome;size:150" json:"nome" validate:"omitempty,max=150"`
	EmailFuncionario    *string     `gorm:"column:emailfuncionario;size:100" json:"emailfuncionario" validate:"omitempty,max=100"`
	TelefoneFuncionario *string     `gorm:"column:telefonefuncionario;size:50" json:"telefonefuncionario" validate:"omitempty,max=50"`
	CodigoExame         *string     `gorm:"column:codigoexame;size:50;index" json:"codigoexame" validate:"omitempty,max=50"`
	Exame               *string     `gorm:"column:exame;size:200" json:"exame" validate:"omitempty,max=200"`
	UltimoPedido        *utils.Data `gorm:"column:ultimopedido" json:"ultimopedido"`
	DataResultado       *utils.Data `gorm:"column:dataresultado" json:"dataresultado"`
	Periodicidade       *int        `gorm:"column:periodicidade" json:"periodicidade" validate:"omitempty,min=0"`
	Refazer             *int        `gorm:"column:refazer;not null;default:0" json:"refazer" validate:"omitempty,oneof=0 1" parcial:"naonulo"`
}
