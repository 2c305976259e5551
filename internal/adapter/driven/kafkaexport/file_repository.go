package kafkaexport

import (
	"encoding/json"
	"fmt"
	"os"
	"path/filepath"
	"sort"
	"strings"

	"github.com/diillson/kafka-cost-report-go/internal/domain/entity"
	"github.com/diillson/kafka-cost-report-go/internal/domain/repository"
	"github.com/diillson/kafka-cost-report-go/internal/shared/types"
)

// FileRepositoryImpl implementa o ExportFileRepository sobre o sistema de arquivos local.
type FileRepositoryImpl struct{}

// NewFileRepository cria uma nova implementação do ExportFileRepository.
func NewFileRepository() repository.ExportFileRepository {
	return &FileRepositoryImpl{}
}

// DiscoverFiles localiza os arquivos de exportação no diretório.
// A busca não é recursiva e a comparação do padrão ignora maiúsculas/minúsculas.
func (r *FileRepositoryImpl) DiscoverFiles(dir string, pattern string) ([]string, error) {
	info, err := os.Stat(dir)
	if err != nil {
		return nil, fmt.Errorf("directory not found: %s", dir)
	}
	if !info.IsDir() {
		return nil, fmt.Errorf("%s is not a directory", dir)
	}

	entries, err := os.ReadDir(dir)
	if err != nil {
		return nil, fmt.Errorf("error reading directory %s: %w", dir, err)
	}

	loweredPattern := strings.ToLower(pattern)
	matches := []string{}
	for _, e := range entries {
		if e.IsDir() {
			continue
		}
		if strings.Contains(strings.ToLower(e.Name()), loweredPattern) {
			matches = append(matches, e.Name())
		}
	}

	// Ordena lexicograficamente pelo nome (ex: topic-message, topic-message(1))
	sort.Strings(matches)

	return matches, nil
}

// ExtractRecords lê um arquivo de exportação e decodifica as duas camadas de JSON.
// Falhas de leitura ou parse viram *types.ExtractError com o tipo da camada;
// divergências de formato viram warnings e o arquivo segue com lista vazia.
func (r *FileRepositoryImpl) ExtractRecords(path string) ([]entity.CostRecord, []string, error) {
	name := filepath.Base(path)

	data, err := os.ReadFile(path)
	if err != nil {
		return nil, nil, &types.ExtractError{File: name, Kind: types.ExtractErrorRead, Err: err}
	}

	var envelope entity.Envelope
	if err := json.Unmarshal(data, &envelope); err != nil {
		return nil, nil, &types.ExtractError{File: name, Kind: types.ExtractErrorOuterParse, Err: err}
	}

	var warnings []string

	if inner, ok := envelope.ValueString(); ok {
		// Formato esperado: o payload real é uma string JSON no campo "Value".
		var payload entity.Payload
		if err := json.Unmarshal([]byte(inner), &payload); err != nil {
			return nil, nil, &types.ExtractError{File: name, Kind: types.ExtractErrorInnerParse, Err: err}
		}
		if len(payload.Data) == 0 {
			warnings = append(warnings, fmt.Sprintf("No data rows found in inner JSON of %s", name))
		}
		return normalizeRecords(payload.Data), warnings, nil
	}

	// O arquivo pode já estar no formato do payload interno.
	warnings = append(warnings, fmt.Sprintf("'Value' field containing JSON string not found in %s. Assuming direct JSON.", name))

	rows := []entity.CostRecord{}
	if len(envelope.Data) > 0 {
		if err := json.Unmarshal(envelope.Data, &rows); err != nil {
			return nil, nil, &types.ExtractError{File: name, Kind: types.ExtractErrorOuterParse, Err: err}
		}
	}
	if len(rows) == 0 {
		warnings = append(warnings, fmt.Sprintf("No data rows found directly in %s", name))
	}

	return normalizeRecords(rows), warnings, nil
}

// normalizeRecords aplica os valores padrão a cada registro decodificado.
func normalizeRecords(rows []entity.CostRecord) []entity.CostRecord {
	for i := range rows {
		rows[i].Normalize()
	}
	return rows
}
