package main

import (
	"fmt"
	"sort"
	"strconv"
	"strings"
	"time"

	"github.com/pterm/pterm"

	"github.com/goodnatureofminers/coffeeledger-backend/internal/chain"
	"github.com/goodnatureofminers/coffeeledger-backend/internal/model"
	"github.com/goodnatureofminers/coffeeledger-backend/internal/service"
)

func renderViolation(err *chain.IntegrityError) {
	if err == nil {
		return
	}
	pbox := pterm.DefaultBox.WithHorizontalPadding(4).WithTopPadding(1).WithBottomPadding(1)
	body := pterm.Sprintfln("block:     %d", err.Position) +
		pterm.Sprintfln("invariant: %s", err.Invariant) +
		pterm.Sprintf("detail:    %s", err.Detail)
	pbox.WithTitle(pterm.LightRed("|INTEGRITY|")).WithTitleTopCenter().Println(body)
}

func renderInfo(info service.Info) error {
	status := pterm.LightGreen("valid")
	if !info.Valid {
		status = pterm.LightRed("invalid")
	}
	data := pterm.TableData{
		{"storage", info.Location},
		{"length", strconv.Itoa(info.Length)},
		{"difficulty", strconv.Itoa(info.Difficulty)},
		{"status", status},
		{"batches", strconv.Itoa(info.Batches)},
		{"origins", strconv.Itoa(info.Origins)},
	}
	if info.Latest != nil {
		data = append(data,
			[]string{"latest block", strconv.FormatUint(info.Latest.Position, 10)},
			[]string{"latest hash", info.Latest.Hash},
		)
	}
	return pterm.DefaultTable.WithData(data).Render()
}

func renderBlocks(blocks ...model.BlockView) error {
	data := pterm.TableData{{"position", "created", "batch", "origin", "hash", "fields"}}
	for _, b := range blocks {
		data = append(data, []string{
			strconv.FormatUint(b.Position, 10),
			b.CreatedAt.Format(time.RFC3339),
			fmt.Sprint(b.Payload[model.FieldBatchID]),
			fmt.Sprint(b.Payload[model.FieldOrigin]),
			b.Hash,
			otherFields(b.Payload),
		})
	}
	return pterm.DefaultTable.WithHasHeader().WithData(data).Render()
}

func otherFields(payload map[string]any) string {
	keys := make([]string, 0, len(payload))
	for k := range payload {
		switch k {
		case model.FieldBatchID, model.FieldOrigin, model.FieldType:
			continue
		}
		keys = append(keys, k)
	}
	sort.Strings(keys)

	parts := make([]string, 0, len(keys))
	for _, k := range keys {
		parts = append(parts, fmt.Sprintf("%s=%v", k, payload[k]))
	}
	return strings.Join(parts, " ")
}
