package permissao

import (
	"fmt"

	"github.com/grsnucleo/portal-grs/internal/apierr"
)

type Recurso string

const (
	RecursoEmpresas     Recurso = "empresas"
	RecursoFuncionarios Recurso = "funcionarios"
	RecursoConvocacoes  Recurso = "convocacoes"
	RecursoAbsenteismos Recurso = "absenteismos"
	RecursoUsuarios     Recurso = "usuarios"
)

type Operacao string

const (
	Listar    Operacao = "listar"
	Criar     Operacao = "criar"
	Ler       Operacao = "ler"
	Atualizar Operacao = "atualizar"
	Deletar   Operacao = "deletar"
)

// regra lista os papéis autorizados; proprios são os papéis limitados ao próprio registro
type regra struct {
	papeis   []Papel
	proprios []Papel
}

var (
	todos           = []Papel{Administrador, ClienteAdm, Convocacao, Absenteismo, Funcionarios}
	gestores        = []Papel{Administrador, ClienteAdm}
	somenteAdmin    = []Papel{Administrador}
	leitoresFunc    = []Papel{Administrador, ClienteAdm, Funcionarios}
	operadoresConv  = []Papel{Administrador, ClienteAdm, Convocacao}
	operadoresAbsen = []Papel{Administrador, ClienteAdm, Absenteismo}
	restritos       = []Papel{Convocacao, Absenteismo, Funcionarios}
)

var tabela = map[Recurso]map[Operacao]regra{
	RecursoEmpresas: {
		Listar:    {papeis: todos},
		Ler:       {papeis: todos},
		Criar:     {papeis: somenteAdmin},
		Atualizar: {papeis: somenteAdmin},
		Deletar:   {papeis: somenteAdmin},
	},
	RecursoFuncionarios: {
		Listar:    {papeis: leitoresFunc},
		Ler:       {papeis: leitoresFunc},
		Criar:     {papeis: gestores},
		Atualizar: {papeis: gestores},
		Deletar:   {papeis: gestores},
	},
	RecursoConvocacoes: {
		Listar:    {papeis: operadoresConv},
		Ler:       {papeis: operadoresConv},
		Criar:     {papeis: operadoresConv},
		Atualizar: {papeis: operadoresConv},
		Deletar:   {papeis: gestores},
	},
	RecursoAbsenteismos: {
		Listar:    {papeis: operadoresAbsen},
		Ler:       {papeis: operadoresAbsen},
		Criar:     {papeis: operadoresAbsen},
		Atualizar: {papeis: operadoresAbsen},
		Deletar:   {papeis: gestores},
	},
	RecursoUsuarios: {
		Listar:    {papeis: todos, proprios: restritos},
		Ler:       {papeis: todos, proprios: restritos},
		Criar:     {papeis: gestores},
		Atualizar: {papeis: todos, proprios: restritos},
		Deletar:   {papeis: somenteAdmin},
	},
}

func contem(papeis []Papel, p Papel) bool {
	for _, x := range papeis {
		if x == p {
			return true
		}
	}
	return false
}

// Permitido consulta a tabela de permissões
func Permitido(p Papel, r Recurso, op Operacao) bool {
	return contem(tabela[r][op].papeis, p)
}

// Autorizar verifica o papel e devolve o escopo de empresas da identidade
func Autorizar(id Identidade, r Recurso, op Operacao) (Escopo, error) {
	rg, ok := tabela[r][op]
	if !ok || !contem(rg.papeis, id.Papel) {
		return Escopo{}, apierr.Forbidden(fmt.Sprintf("sem permissão para %s %s", op, r))
	}
	escopo := EscopoDe(id)
	if contem(rg.proprios, id.Papel) {
		escopo.proprio = true
		escopo.usuarioID = id.UsuarioID
	}
	return escopo, nil
}

// EscopoDe calcula o escopo de empresas a partir do vínculo usuário-empresa
func EscopoDe(id Identidade) Escopo {
	if id.Administrador() {
		return SemRestricao()
	}
	return RestritoA(id.Empresas...)
}
