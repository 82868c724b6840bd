package doctor

import (
	"bytes"
	"context"

	"github.com/clientehm/api/internal/platform/export"
)

const exportBatch = 500

var exportHeaders = []string{
	"ID", "Nome completo", "CRM", "Especialidade", "RQE", "Resumo da especialidade",
	"Criado em", "Excluído em",
}

// Export renders every doctor matching f as an XLSX workbook. Limit and
// Offset in f are ignored.
func (s *Service) Export(ctx context.Context, f ListFilter) ([]byte, error) {
	var rows [][]string
	f.Offset = 0
	f.Limit = exportBatch
	for {
		ds, total, err := s.repo.List(ctx, f)
		if err != nil {
			return nil, err
		}
		for _, d := range ds {
			rows = append(rows, exportRow(d))
		}
		f.Offset += len(ds)
		if len(ds) == 0 || f.Offset >= total {
			break
		}
	}

	wb := export.NewWorkbook()
	if err := wb.AddSheet("Médicos", exportHeaders, rows); err != nil {
		return nil, err
	}
	var buf bytes.Buffer
	if err := wb.Write(&buf); err != nil {
		return nil, err
	}
	return buf.Bytes(), nil
}

func exportRow(d *Doctor) []string {
	return []string{
		d.ID.String(),
		d.NomeCompleto,
		d.CRM,
		d.Especialidade,
		export.Str(d.RQE),
		export.Str(d.ResumoEspecialidade),
		export.FormatTime(d.CreatedAt),
		export.FormatOptionalTime(d.DeletedAt),
	}
}
