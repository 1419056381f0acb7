package absenteismo

import "github.com/grsnucleo/portal-grs/internal/utils"

// Absenteismo é um afastamento (atestado) de um funcionário, ligado pela matrícula
type Absenteismo struct {
	ID            uint   `gorm:"column:id;primaryKey;autoIncrement" json:"id"`
	MatriculaFunc string `gorm:"column:matricula_func;size:30;not null;index" json:"matricula_func"`
	FuncionarioID *uint  `gorm:"column:funcionario_id;index" json:"funcionario_id"`
	Atestado
}

func (Absenteismo) TableName() string {
	return "absenteismos"
}

// Atestado reúne os dados do afastamento. Sexo: 1 masculino, 2 feminino.
// Horas no formato HH:MM.
type Atestado struct {
	Unidade            *string     `gorm:"column:unidade;size:130" json:"unidade" validate:"omitempty,max=130"`
	Setor              *string     `gorm:"column:setor;size:130" json:"setor" validate:"omitempty,max=130"`
	DtNascimento       *utils.Data `gorm:"column:dt_nascimento" json:"dt_nascimento"`
	Sexo               *int        `gorm:"column:sexo" json:"sexo" validate:"omitempty,oneof=1 2"`
	TipoAtestado       *int        `gorm:"column:tipo_atestado" json:"tipo_atestado"`
	DtInicioAtestado   *utils.Data `gorm:"column:dt_inicio_atestado" json:"dt_inicio_atestado"`
	DtFimAtestado      *utils.Data `gorm:"column:dt_fim_atestado" json:"dt_fim_atestado"`
	HoraInicioAtestado *string     `gorm:"column:hora_inicio_atestado;size:5" json:"hora_inicio_atestado" validate:"omitempty,max=5"`
	HoraFimAtestado    *string     `gorm:"column:hora_fim_atestado;size:5" json:"hora_fim_atestado" validate:"omitempty,max=5"`
	DiasAfastados      *int        `gorm:"column:dias_afastados" json:"dias_afastados" validate:"omitempty,min=0"`
	HorasAfastado      *string     `gorm:"column:horas_afastado;size:5" json:"horas_afastado" validate:"omitempty,max=5"`
	CIDPrincipal       *string     `gorm:"column:cid_principal;size:10" json:"cid_principal" validate:"omitempty,max=10"`
	DescricaoCID       *string     `gorm:"column:descricao_cid;size:264" json:"descricao_cid" validate:"omitempty,max=264"`
	GrupoPatologico    *string     `gorm:"column:grupo_patologico;size:80" json:"grupo_patologico" validate:"omitempty,max=80"`
	TipoLicenca        *string     `gorm:"column:tipo_licenca;size:100" json:"tipo_licenca" validate:"omitempty,max=100"`
}
