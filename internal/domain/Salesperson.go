// Package domain contém as estruturas de dados do domínio da aplicação
package domain

import "strings"

type Gender string

const (
	GenderMale   Gender = "MALE"
	GenderFemale Gender = "FEMALE"
)

func (g Gender) IsValid() bool {
	return g == GenderMale || g == GenderFemale
}

// Pools de avatares usados apenas para exibição
var (
	MaleAvatars = []string{
		"/avatars/male/01.svg",
		"/avatars/male/02.svg",
		"/avatars/male/03.svg",
		"/avatars/male/04.svg",
		"/avatars/male/05.svg",
	}
	FemaleAvatars = []string{
		"/avatars/female/01.svg",
		"/avatars/female/02.svg",
		"/avatars/female/03.svg",
		"/avatars/female/04.svg",
		"/avatars/female/05.svg",
	}
)

// Salesperson representa um consultor do roster, independente do mês
type Salesperson struct {
	ID     string `json:"id"`
	Name   string `json:"name"`
	Gender Gender `json:"gender"`
	Avatar string `json:"avatar"`
}

type CreateSalespersonRequest struct {
	Name   string `json:"name"`
	Gender Gender `json:"gender"`
}

type RenameSalespersonRequest struct {
	Name string `json:"name"`
}

// AvatarFor escolhe o avatar com base na quantidade de consultores do mesmo gênero
// já cadastrados, em módulo do tamanho do pool
func AvatarFor(gender Gender, roster []Salesperson) string {
	pool := MaleAvatars
	if gender == GenderFemale {
		pool = FemaleAvatars
	}

	count := 0
	for _, sp := range roster {
		if sp.Gender == gender {
			count++
		}
	}

	return pool[count%len(pool)]
}

// NormalizeName remove espaços das bordas; retorna vazio se não sobrar nada
func NormalizeName(name string) string {
	return strings.TrimSpace(name)
}

// FindSalesperson retorna o índice do consultor no roster ou -1
func FindSalesperson(roster []Salesperson, id string) int {
	for i, sp := range roster {
		if sp.ID == id {
			return i
		}
	}
	return -1
}

// RosterResult informa o efeito de uma mutação no roster
type RosterResult struct {
	Applied     bool          `json:"applied"`
	Salesperson *Salesperson  `json:"salesperson,omitempty"`
	Roster      []Salesperson `json:"roster"`
}

// CloneRoster devolve uma cópia independente do roster
func CloneRoster(roster []Salesperson) []Salesperson {
	clone := make([]Salesperson, len(roster))
	copy(clone, roster)
	return clone
}
