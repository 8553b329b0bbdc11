package utils

import gonanoid "github.com/matoous/go-nanoid/v2"

const characters = "ABCDEFGHIJKLMNOPQRSTUVWXYZabcdefghijklmnopqrstuvwxyz0123456789"

func GenerateID() (string, error) {
	return gonanoid.Generate(characters, 6)
}

// GenerateSalespersonID gera o identificador opaco de um consultor (ex: spX3k9Qa)
func GenerateSalespersonID() (string, error) {
	id, err := GenerateID()
	if err != nil {
		return "", err
	}
	return "sp" + id, nil
}
