package ui

import (
	"github.com/jedib0t/go-pretty/v6/table"
	"github.com/jedib0t/go-pretty/v6/text"

	"github.com/patrickprogramme/restyle/internal/styles"
)

// renderStyleTable met en forme les records pour affichage avant sélection :
// une ligne par style, colonnes alignées, coins arrondis.
func renderStyleTable(records []styles.Record) string {
	tw := table.NewWriter()
	tw.SetStyle(table.StyleRounded)

	tw.AppendHeader(table.Row{"Nom", "Police", "Taille", "Couleur primaire", "Gras", "Italique"})

	for _, rec := range records {
		tw.AppendRow(table.Row{
			rec.Name(),
			rec.FontName(),
			fieldOrEmpty(rec, styles.FieldFontSize),
			fieldOrEmpty(rec, styles.FieldPrimaryColor),
			fieldOrEmpty(rec, styles.FieldBold),
			fieldOrEmpty(rec, styles.FieldItalic),
		})
	}

	tw.SetColumnConfigs([]table.ColumnConfig{
		{Number: 3, Align: text.AlignRight, AlignHeader: text.AlignLeft},
	})

	return tw.Render()
}

func fieldOrEmpty(rec styles.Record, idx int) string {
	if idx < 0 || idx >= len(rec.Fields) {
		return ""
	}
	return rec.Fields[idx]
}
