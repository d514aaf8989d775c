package validate

import (
	"bufio"
	"context"
	"encoding/json"
	"fmt"
	"io"
	"strings"

	"github.com/Gunvolt24/wb_tickets/internal/ports"
)

// JSONLResult — статистика обработки потока JSONL.
type JSONLResult struct {
	ValidLinesCount   int
	InvalidLinesCount int
}

// QuoteJSONLStream — читает запросы построчно, для каждой валидной строки пишет итог
// одной строкой JSON. Невалидные строки считаются и пропускаются, пустые — игнорируются.
func QuoteJSONLStream(ctx context.Context, validator ports.PurchaseValidator, ir io.Reader, ow io.Writer) (JSONLResult, error) {
	var res JSONLResult

	scanner := bufio.NewScanner(ir)
	buf := make([]byte, 0, 64*1024)
	scanner.Buffer(buf, 1024*1024)

	for scanner.Scan() {
		if err := ctx.Err(); err != nil {
			return res, err
		}
		lineBytes := scanner.Bytes()
		if len(strings.TrimSpace(string(lineBytes))) == 0 {
			continue
		}

		quote, err := QuoteFromJSON(ctx, validator, lineBytes)
		if err != nil {
			res.InvalidLinesCount++
			continue
		}

		line, _ := json.Marshal(quote)
		if _, err := ow.Write(append(line, '\n')); err != nil {
			return res, fmt.Errorf("write quote: %w", err)
		}
		res.ValidLinesCount++
	}
	if err := scanner.Err(); err != nil {
		return res, fmt.Errorf("scan: %w", err)
	}
	return res, nil
}
