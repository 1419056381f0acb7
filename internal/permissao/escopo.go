package permissao

import (
	"sort"

	"gorm.io/gorm"
)

// Escopo é o conjunto de empresas visível para uma identidade.
// O valor zero não enxerga nada.
type Escopo struct {
	irrestrito bool
	codigos    map[uint]struct{}
	proprio    bool
	usuarioID  uint
}

// SemRestricao devolve o escopo do administrador
func SemRestricao() Escopo {
	return Escopo{irrestrito: true}
}

// RestritoA devolve um escopo limitado às empresas informadas
func RestritoA(codigos ...uint) Escopo {
	e := Escopo{codigos: make(map[uint]struct{}, len(codigos))}
	for _, c := range codigos {
		e.codigos[c] = struct{}{}
	}
	return e
}

// Irrestrito indica se o escopo ignora o filtro de empresas
func (e Escopo) Irrestrito() bool { return e.irrestrito }

// SomenteProprio indica que a identidade só enxerga o próprio registro de usuário
func (e Escopo) SomenteProprio() (uint, bool) {
	return e.usuarioID, e.proprio
}

// Contem verifica se a empresa está no escopo
func (e Escopo) Contem(codigo uint) bool {
	if e.irrestrito {
		return true
	}
	_, ok := e.codigos[codigo]
	return ok
}

// ContemPtr trata referência de empresa opcional; nil só é visível sem restrição
func (e Escopo) ContemPtr(codigo *uint) bool {
	if codigo == nil {
		return e.irrestrito
	}
	return e.Contem(*codigo)
}

// Codigos retorna as empresas do escopo em ordem crescente
func (e Escopo) Codigos() []uint {
	out := make([]uint, 0, len(e.codigos))
	for c := range e.codigos {
		out = append(out, c)
	}
	sort.Slice(out, func(i, j int) bool { return out[i] < out[j] })
	return out
}

// Aplicar restringe a consulta pela coluna de empresa
func (e Escopo) Aplicar(db *gorm.DB, coluna string) *gorm.DB {
	if e.irrestrito {
		return db
	}
	codigos := e.Codigos()
	if len(codigos) == 0 {
		return db.Where("1 = 0")
	}
	return db.Where(coluna+" IN ?", codigos)
}
