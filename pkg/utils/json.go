package utils

import (
	"bytes"
	stdjson "encoding/json"

	jsoniter "github.com/json-iterator/go"
	"github.com/vfg2006/sdr-dashboard-api/pkg/log"
)

var json = jsoniter.ConfigCompatibleWithStandardLibrary

// PrettyJson indenta o valor com tabs; []byte é tratado como JSON já serializado.
// Em caso de erro o problema é registrado e o retorno fica vazio.
func PrettyJson(in any) string {
	raw, isRaw := in.([]byte)
	if !isRaw {
		buffer, err := json.MarshalIndent(in, "", "\t")
		if err != nil {
			log.L.WithError(err).Error("utils: erro ao serializar JSON")
			return ""
		}
		return string(buffer)
	}

	var out bytes.Buffer
	if err := stdjson.Indent(&out, raw, "", "\t"); err != nil {
		log.L.WithError(err).Error("utils: JSON inválido")
		return ""
	}

	return out.String()
}
