package entity

import "encoding/json"

// DefaultCostUnit é o rótulo atribuído a registros sem cost_unit.
const DefaultCostUnit = "UNKNOWN"

// Envelope is the outer JSON document of one Kafka export file.
// Messages exported from the topic carry the real payload as a JSON string
// in the "Value" field; files may also already be the payload itself, in
// which case Data is set directly.
type Envelope struct {
	Value json.RawMessage `json:"Value,omitempty"`
	Data  json.RawMessage `json:"data,omitempty"`
}

// ValueString devolve o conteúdo de Value quando ele é uma string JSON.
// Retorna false quando Value está ausente ou tem outro tipo.
func (e *Envelope) ValueString() (string, bool) {
	if len(e.Value) == 0 {
		return "", false
	}
	var s string
	if err := json.Unmarshal(e.Value, &s); err != nil {
		return "", false
	}
	return s, true
}

// Payload is the inner JSON object carrying the cost rows.
type Payload struct {
	Data []CostRecord `json:"data"`
}

// CostRecord is a single cost-accounting row as exported from the topic.
// Fields besides id, cost and cost_unit are ignored on decode.
type CostRecord struct {
	ID       string  `json:"id,omitempty"`
	Cost     float64 `json:"cost"`
	CostUnit string  `json:"cost_unit"`
}

// Normalize preenche os valores padrão de um registro recém-decodificado.
// Um cost ausente já chega como 0.0 pelo decode; cost_unit vazio vira UNKNOWN.
func (r *CostRecord) Normalize() {
	if r.CostUnit == "" {
		r.CostUnit = DefaultCostUnit
	}
}
