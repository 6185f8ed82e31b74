package normalize

import (
	"encoding/json"
	"fmt"
	"strconv"

	"github.com/consultacr/app-fiscal/internal/models"
)

// The civil-registry upstream answers one of three shapes depending on the
// query type: an object wrapping a results array, a bare array, or a single
// object. Attribute names vary between shapes, so each target attribute is
// resolved through an ordered alias table.
var (
	wrapperKeys = []string{"results", "resultados", "items", "data"}

	idAliases     = []string{"cedula", "cedula_numero", "id"}
	cedulaAliases = []string{"cedula", "cedula_numero", "identificacion"}
	// The bare-array shape never carries the raw cédula alternative.
	cedulaAliasesNarrow = []string{"cedula", "identificacion"}
	nombreAliases       = []string{"nombre", "fullname", "name", "nombre_completo"}
	tipoAliases         = []string{"tipo", "tipo_persona", "type", "clase"}
)

// Identity maps a raw civil-registry payload of any of the three known
// shapes into a uniform match list, keeping the original payload alongside.
func Identity(raw json.RawMessage) models.IdentityResult {
	result := models.IdentityResult{Items: []models.IdentityRecord{}, Raw: raw}

	var payload interface{}
	if err := json.Unmarshal(raw, &payload); err != nil {
		return result
	}

	switch v := payload.(type) {
	case map[string]interface{}:
		if list, ok := wrappedArray(v); ok {
			result.Items = recordsFromList(list, cedulaAliases)
			return result
		}
		// Single object: only a record with at least one populated
		// attribute counts, otherwise an empty upstream object would
		// surface as a phantom match.
		rec := recordFrom(v, 0, cedulaAliases)
		if rec.Cedula != "" || rec.Nombre != "" || rec.Tipo != "" {
			result.Items = append(result.Items, rec)
		}
	case []interface{}:
		result.Items = recordsFromList(v, cedulaAliasesNarrow)
	}

	return result
}

// wrappedArray finds the results array inside an object payload: a known
// wrapper key first, then any field holding an array.
func wrappedArray(obj map[string]interface{}) ([]interface{}, bool) {
	for _, key := range wrapperKeys {
		if list, ok := obj[key].([]interface{}); ok {
			return list, true
		}
	}
	for _, v := range obj {
		if list, ok := v.([]interface{}); ok {
			return list, true
		}
	}
	return nil, false
}

func recordsFromList(list []interface{}, cedulaKeys []string) []models.IdentityRecord {
	items := make([]models.IdentityRecord, 0, len(list))
	for i, element := range list {
		obj, ok := element.(map[string]interface{})
		if !ok {
			continue
		}
		items = append(items, recordFrom(obj, i, cedulaKeys))
	}
	return items
}

func recordFrom(obj map[string]interface{}, index int, cedulaKeys []string) models.IdentityRecord {
	id := stringField(obj, idAliases)
	if id == "" {
		// Positional index keeps the record addressable when the
		// upstream carries no identifier at all.
		id = strconv.Itoa(index)
	}

	extra, _ := json.Marshal(obj)

	return models.IdentityRecord{
		ID:     id,
		Cedula: stringField(obj, cedulaKeys),
		Nombre: stringField(obj, nombreAliases),
		Tipo:   stringField(obj, tipoAliases),
		Extra:  extra,
	}
}

// stringField resolves the first present alias to a string. Upstreams are
// loosely typed and emit numbers where identifiers are expected.
func stringField(obj map[string]interface{}, aliases []string) string {
	for _, key := range aliases {
		v, ok := obj[key]
		if !ok || v == nil {
			continue
		}
		switch val := v.(type) {
		case string:
			if val != "" {
				return val
			}
		case float64:
			return formatNumber(val)
		case bool:
			return strconv.FormatBool(val)
		}
	}
	return ""
}

func formatNumber(v float64) string {
	if v == float64(int64(v)) {
		return strconv.FormatInt(int64(v), 10)
	}
	return fmt.Sprintf("%v", v)
}
