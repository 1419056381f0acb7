package empresa

type Empresa struct {
	Codigo              uint    `gorm:"column:codigo;primaryKey;autoIncrement" json:"codigo"`
	NomeAbreviado       string  `gorm:"column:nomeabreviado;size:60;not null" json:"nomeabreviado"`
	RazaoSocialInicial  *string `gorm:"column:razaosocialinicial;size:200" json:"razaosocialinicial"`
	RazaoSocial         string  `gorm:"column:razaosocial;size:200;not null" json:"razaosocial"`
	Endereco            *string `gorm:"column:endereco;size:110" json:"endereco"`
	NumeroEndereco      *string `gorm:"column:numeroendereco;size:20" json:"numeroendereco"`
	ComplementoEndereco *string `gorm:"column:complementoendereco;size:300" json:"complementoendereco"`
	Bairro              *string `gorm:"column:bairro;size:80" json:"bairro"`
	Cidade              *string `gorm:"column:cidade;size:50" json:"cidade"`
	Cep                 *string `gorm:"column:cep;size:11" json:"cep"`
	Uf                  *string `gorm:"column:uf;size:2" json:"uf"`
	CNPJ                string  `gorm:"column:cnpj;size:20;uniqueIndex;not null" json:"cnpj"`
	InscricaoEstadual   *string `gorm:"column:inscricaoestadual;size:20" json:"inscricaoestadual"`
	InscricaoMunicipal  *string `gorm:"column:inscricaomunicipal;size:20" json:"inscricaomunicipal"`
	Ativo               int     `gorm:"column:ativo;not null" json:"ativo"`
}

func (Empresa) TableName() string {
	return "empresas"
}
