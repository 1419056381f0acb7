package funcionario

import (
	"time"

	"github.com/grsnucleo/portal-grs/internal/utils"
)

type Funcionario struct {
	Codigo        uint   `gorm:"column:codigo;primaryKey;autoIncrement" json:"codigo"`
	CodigoEmpresa uint   `gorm:"column:codigoempresa;not null;index" json:"codigoempresa"`
	Nome          string `gorm:"column:nome;size:120;not null" json:"nome"`
	Dados
	DataCriacao       time.Time `gorm:"column:data_criacao;autoCreateTime" json:"data_criacao"`
	UltimaAtualizacao time.Time `gorm:"column:ultima_atualizacao;autoUpdateTime" json:"ultima_atualizacao"`
}

func (Funcionario) TableName() string {
	return "funcionarios"
}

// Dados são os atributos cadastrais do funcionário, todos opcionais.
// Sexo: 1 masculino, 2 feminino. Estado civil: 1 a 7.
type Dados struct {
	NomeEmpresa          *string     `gorm:"column:nomeempresa;size:200" json:"nomeempresa" validate:"omitempty,max=200"`
	CodigoUnidade        *string     `gorm:"column:codigounidade;size:20" json:"codigounidade" validate:"omitempty,max=20"`
	NomeUnidade          *string     `gorm:"column:nomeunidade;size:130" json:"nomeunidade" validate:"omitempty,max=130"`
	CodigoSetor          *string     `gorm:"column:codigosetor;size:12" json:"codigosetor" validate:"omitempty,max=12"`
	NomeSetor            *string     `gorm:"column:nomesetor;size:130" json:"nomesetor" validate:"omitempty,max=130"`
	CodigoCargo          *string     `gorm:"column:codigocargo;size:10" json:"codigocargo" validate:"omitempty,max=10"`
	NomeCargo            *string     `gorm:"column:nomecargo;size:130" json:"nomecargo" validate:"omitempty,max=130"`
	CBOCargo             *string     `gorm:"column:cbocargo;size:10" json:"cbocargo" validate:"omitempty,max=10"`
	CCusto               *string     `gorm:"column:ccusto;size:50" json:"ccusto" validate:"omitempty,max=50"`
	NomeCentroCusto      *string     `gorm:"column:nomecentrocusto;size:130" json:"nomecentrocusto" validate:"omitempty,max=130"`
	Matricula            *string     `gorm:"column:matriculafuncionario;size:30;uniqueIndex" json:"matriculafuncionario" validate:"omitempty,max=30"`
	CPF                  *string     `gorm:"column:cpf;size:19" json:"cpf" validate:"omitempty,max=19"`
	RG                   *string     `gorm:"column:rg;size:19" json:"rg" validate:"omitempty,max=19"`
	UFRG                 *string     `gorm:"column:ufrg;size:10" json:"ufrg" validate:"omitempty,max=10"`
	OrgaoEmissorRG       *string     `gorm:"column:orgaoemissorrg;size:20" json:"orgaoemissorrg" validate:"omitempty,max=20"`
	Situacao             *string     `gorm:"column:situacao;size:12" json:"situacao" validate:"omitempty,max=12"`
	Sexo                 *int        `gorm:"column:sexo" json:"sexo" validate:"omitempty,oneof=1 2"`
	PIS                  *string     `gorm:"column:pis;size:20" json:"pis" validate:"omitempty,max=20"`
	CTPS                 *string     `gorm:"column:ctps;size:30" json:"ctps" validate:"omitempty,max=30"`
	SerieCTPS            *string     `gorm:"column:seriectps;size:25" json:"seriectps" validate:"omitempty,max=25"`
	EstadoCivil          *int        `gorm:"column:estadocivil" json:"estadocivil" validate:"omitempty,min=1,max=7"`
	TipoContatacao       *int        `gorm:"column:tipocontatacao" json:"tipocontatacao"`
	DataNascimento       *utils.Data `gorm:"column:data_nascimento" json:"data_nascimento"`
	DataAdmissao         *utils.Data `gorm:"column:data_admissao" json:"data_admissao"`
	DataDemissao         *utils.Data `gorm:"column:data_demissao" json:"data_demissao"`
	Endereco             *string     `gorm:"column:endereco;size:110" json:"endereco" validate:"omitempty,max=110"`
	NumeroEndereco       *string     `gorm:"column:numero_endereco;size:20" json:"numero_endereco" validate:"omitempty,max=20"`
	Bairro               *string     `gorm:"column:bairro;size:80" json:"bairro" validate:"omitempty,max=80"`
	Cidade               *string     `gorm:"column:cidade;size:50" json:"cidade" validate:"omitempty,max=50"`
	UF                   *string     `gorm:"column:uf;size:20" json:"uf" validate:"omitempty,max=20"`
	CEP                  *string     `gorm:"column:cep;size:10" json:"cep" validate:"omitempty,max=10"`
	TelefoneResidencial  *string     `gorm:"column:telefoneresidencial;size:20" json:"telefoneresidencial" validate:"omitempty,max=20"`
	TelefoneCelular      *string     `gorm:"column:telefonecelular;size:20" json:"telefonecelular" validate:"omitempty,max=20"`
	Email                *string     `gorm:"column:email;size:400" json:"email" validate:"omitempty,max=400"`
	Deficiente           *int        `gorm:"column:deficiente" json:"deficiente" validate:"omitempty,oneof=0 1"`
	Deficiencia          *string     `gorm:"column:deficiencia;size:861" json:"deficiencia" validate:"omitempty,max=861"`
	NomeMae              *string     `gorm:"column:nm_mae_funcionario;size:120" json:"nm_mae_funcionario" validate:"omitempty,max=120"`
	DataUltAlteracao     *utils.Data `gorm:"column:dataultalteracao" json:"dataultalteracao"`
	MatriculaRH          *string     `gorm:"column:matricularh;size:30" json:"matricularh" validate:"omitempty,max=30"`
	Cor                  *int        `gorm:"column:cor" json:"cor"`
	Escolaridade         *int        `gorm:"column:escolaridade" json:"escolaridade"`
	Naturalidade         *string     `gorm:"column:naturalidade;size:50" json:"naturalidade" validate:"omitempty,max=50"`
	Ramal                *string     `gorm:"column:ramal;size:10" json:"ramal" validate:"omitempty,max=10"`
	RegimeRevezamento    *int        `gorm:"column:regimerevezamento" json:"regimerevezamento"`
	RegimeTrabalho       *string     `gorm:"column:regimetrabalho;size:500" json:"regimetrabalho" validate:"omitempty,max=500"`
	TelComercial         *string     `gorm:"column:telcomercial;size:20" json:"telcomercial" validate:"omitempty,max=20"`
	TurnoTrabalho        *int        `gorm:"column:turnotrabalho" json:"turnotrabalho"`
	RHUnidade            *string     `gorm:"column:rhunidade;size:80" json:"rhunidade" validate:"omitempty,max=80"`
	RHSetor              *string     `gorm:"column:rhsetor;size:80" json:"rhsetor" validate:"omitempty,max=80"`
	RHCargo              *string     `gorm:"column:rhcargo;size:80" json:"rhcargo" validate:"omitempty,max=80"`
	RHCentroCustoUnidade *string     `gorm:"column:rhcentrocustounidade;size:80" json:"rhcentrocustounidade" validate:"omitempty,max=80"`
}
