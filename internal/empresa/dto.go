package empresa

type CriarEmpresaRequest struct {
	NomeAbreviado       string  `json:"nomeabreviado" validate:"required,max=60"`
	RazaoSocialInicial  *string `json:"razaosocialinicial" validate:"omitempty,max=200"`
	RazaoSocial         string  `json:"razaosocial" validate:"required,max=200"`
	Endereco            *string `json:"endereco" validate:"omitempty,max=110"`
	NumeroEndereco      *string `json:"numeroendereco" validate:"omitempty,max=20"`
	ComplementoEndereco *string `json:"complementoendereco" validate:"omitempty,max=300"`
	Bairro              *string `json:"bairro" validate:"omitempty,max=80"`
	Cidade              *string `json:"cidade" validate:"omitempty,max=50"`
	Cep                 *string `json:"cep" validate:"omitempty,max=11"`
	Uf                  *string `json:"uf" validate:"omitempty,len=2"`
	CNPJ                string  `json:"cnpj" validate:"required,max=20"`
	InscricaoEstadual   *string `json:"inscricaoestadual" validate:"omitempty,max=20"`
	InscricaoMunicipal  *string `json:"inscricaomunicipal" validate:"omitempty,max=20"`
	Ativo               *int    `json:"ativo" validate:"omitempty,oneof=0 1"`
}

// AtualizarEmpresaRequest só altera as chaves presentes no corpo
type AtualizarEmpresaRequest struct {
	NomeAbreviado       *string `json:"nomeabreviado" validate:"omitempty,max=60" parcial:"naonulo"`
	RazaoSocialInicial  *string `json:"razaosocialinicial" validate:"omitempty,max=200"`
	RazaoSocial         *string `json:"razaosocial" validate:"omitempty,max=200" parcial:"naonulo"`
	Endereco            *string `json:"endereco" validate:"omitempty,max=110"`
	NumeroEndereco      *string `json:"numeroendereco" validate:"omitempty,max=20"`
	ComplementoEndereco *string `json:"complementoendereco" validate:"omitempty,max=300"`
	Bairro              *string `json:"bairro" validate:"omitempty,max=80"`
	Cidade              *string `json:"cidade" validate:"omitempty,max=50"`
	Cep                 *string `json:"cep" validate:"omitempty,max=11"`
	Uf                  *string `json:"uf" validate:"omitempty,len=2"`
	CNPJ                *string `json:"cnpj" validate:"omitempty,max=20" parcial:"naonulo"`
	InscricaoEstadual   *string `json:"inscricaoestadual" validate:"omitempty,max=20"`
	InscricaoMunicipal  *string `json:"inscricaomunicipal" validate:"omitempty,max=20"`
	Ativo               *int    `json:"ativo" validate:"omitempty,oneof=0 1" parcial:"naonulo"`
}

func (req CriarEmpresaRequest) Modelo() Empresa {
	e := Empresa{
		NomeAbreviado:       req.NomeAbreviado,
		RazaoSocialInicial:  req.RazaoSocialInicial,
		RazaoSocial:         req.RazaoSocial,
		Endereco:            req.Endereco,
		NumeroEndereco:      req.NumeroEndereco,
		ComplementoEndereco: req.ComplementoEndereco,
		Bairro:              req.Bairro,
		Cidade:              req.Cidade,
		Cep:                 req.Cep,
		Uf:                  req.Uf,
		CNPJ:                req.CNPJ,
		InscricaoEstadual:   req.InscricaoEstadual,
		InscricaoMunicipal:  req.InscricaoMunicipal,
		Ativo:               1,
	}
	if req.Ativo != nil {
		e.Ativo = *req.Ativo
	}
	return e
}
