package normalize

import (
	"encoding/json"
	"errors"
	"strconv"
	"strings"

	"github.com/consultacr/app-fiscal/internal/models"
	"github.com/consultacr/app-fiscal/internal/utils"
)

var (
	buyAliases  = []string{"compra", "buy", "tipoCambioCompra", "valorCompra"}
	sellAliases = []string{"venta", "sell", "tipoCambioVenta", "valorVenta"}
	dateAliases = []string{"fecha", "date", "fechaActualizacion"}
)

// ErrNoRate reports a payload where neither rate could be located.
var ErrNoRate = errors.New("no exchange rate found in payload")

// Exchange extracts the buy/sell reference rate from a payload whose key
// names and nesting vary across indicator-API versions. Both rates live
// either at the top level or inside one nested object.
func Exchange(raw json.RawMessage) (models.ExchangeRate, error) {
	var payload map[string]interface{}
	if err := json.Unmarshal(raw, &payload); err != nil {
		return models.ExchangeRate{}, err
	}

	rate, ok := ratesFrom(payload)
	if !ok {
		// One level of nesting is enough in every observed shape.
		for _, v := range payload {
			if nested, isObj := v.(map[string]interface{}); isObj {
				if rate, ok = ratesFrom(nested); ok {
					break
				}
			}
		}
	}
	if !ok {
		return models.ExchangeRate{}, ErrNoRate
	}

	if date := stringField(payload, dateAliases); date != "" {
		rate.Date = utils.FormatLocalDate(date)
	}

	return rate, nil
}

func ratesFrom(obj map[string]interface{}) (models.ExchangeRate, bool) {
	buy, buyOK := numberField(obj, buyAliases)
	sell, sellOK := numberField(obj, sellAliases)
	if !buyOK && !sellOK {
		return models.ExchangeRate{}, false
	}
	return models.ExchangeRate{Buy: buy, Sell: sell}, true
}

// numberField resolves the first present alias to a number, accepting both
// JSON numbers and numeric strings (the indicator API uses either, and the
// decimal comma appears in older responses).
func numberField(obj map[string]interface{}, aliases []string) (float64, bool) {
	for _, key := range aliases {
		switch v := obj[key].(type) {
		case float64:
			return v, true
		case string:
			normalized := strings.ReplaceAll(v, ",", ".")
			if f, err := strconv.ParseFloat(normalized, 64); err == nil {
				return f, true
			}
		case map[string]interface{}:
			// Some versions wrap each rate in {"valor": n}.
			if f, ok := numberField(v, []string{"valor", "value"}); ok {
				return f, true
			}
		}
	}
	return 0, false
}
