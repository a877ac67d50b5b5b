// Command ledgerctl inspects and operates a file-backed ledger while the node is stopped.
package main

import (
	"bytes"
	"context"
	"encoding/json"
	"errors"
	"fmt"
	"os"
	"os/signal"
	"syscall"

	"github.com/jessevdk/go-flags"
	"github.com/pterm/pterm"
	"go.uber.org/zap"

	"github.com/goodnatureofminers/coffeeledger-backend/internal/chain"
	"github.com/goodnatureofminers/coffeeledger-backend/internal/metrics"
	"github.com/goodnatureofminers/coffeeledger-backend/internal/model"
	"github.com/goodnatureofminers/coffeeledger-backend/internal/repository/filestore"
	"github.com/goodnatureofminers/coffeeledger-backend/internal/service"
	"github.com/goodnatureofminers/coffeeledger-backend/internal/snapshot"
)

// errNoChain is returned when a command that reads the ledger finds no chain document.
var errNoChain = errors.New("no chain")

// commandContext carries the interrupt-aware context into go-flags commands.
type commandContext struct {
	ctx context.Context
}

type difficultyOption struct {
	Difficulty int `long:"difficulty" env:"LEDGER_DIFFICULTY" description:"proof-of-work difficulty" default:"4"`
}

type ledgerOptions struct {
	difficultyOption
	StorePath string `long:"store-path" env:"LEDGER_STORE_PATH" description:"path of the chain document" default:"data/blockchain.json"`
	BackupDir string `long:"backup-dir" env:"LEDGER_BACKUP_DIR" description:"directory for timestamped backups" default:"data/backups"`
}

// openMode selects whether openLedger may create a missing chain document.
type openMode int

const (
	existingChain openMode = iota
	createChain
)

func main() {
	if err := run(); err != nil {
		pterm.Error.Println(err)
		os.Exit(1)
	}
}

func run() error {
	ctx, cancel := signal.NotifyContext(context.Background(), os.Interrupt, syscall.SIGTERM)
	defer cancel()
	cc := commandContext{ctx: ctx}

	parser := flags.NewNamedParser("ledgerctl", flags.HelpFlag|flags.PassDoubleDash)
	parser.LongDescription = "Operates a file-backed ledger. Commands that open the store lock it, so they fail " +
		"while a ledger node owns the same path; stop the node first."
	mustAdd(parser, "verify", "Validate a chain document",
		"Reads a chain document and reports the first invalid block. Proof-of-work is checked at the larger of "+
			"--difficulty and the difficulty the document declares.", &verifyCommand{commandContext: cc})
	mustAdd(parser, "info", "Show chain information", "Loads the ledger and prints its summary.", &infoCommand{commandContext: cc})
	mustAdd(parser, "submit", "Append a coffee entry",
		"Seals a JSON payload into a new block. Creates the chain document when it does not exist.", &submitCommand{commandContext: cc})
	mustAdd(parser, "lookup", "Find entries", "Lists entries by batch id or origin.", &lookupCommand{commandContext: cc})
	mustAdd(parser, "backup", "Write a timestamped backup", "Copies the current chain into the backup directory.", &backupCommand{commandContext: cc})

	if _, err := parser.Parse(); err != nil {
		var ferr *flags.Error
		if errors.As(err, &ferr) && ferr.Type == flags.ErrHelp {
			parser.WriteHelp(os.Stdout)
			return nil
		}
		return err
	}
	return nil
}

func mustAdd(parser *flags.Parser, name, short, long string, data any) {
	if _, err := parser.AddCommand(name, short, long, data); err != nil {
		panic(err)
	}
}

// openLedger locks and loads the ledger at opts.StorePath. With existingChain a missing document
// is an error instead of a fresh genesis. The returned func releases the store. Log output is
// discarded; results are printed.
func openLedger(ctx context.Context, opts ledgerOptions, mode openMode) (*service.LedgerService, func(), error) {
	store, err := filestore.NewStore(opts.StorePath, metrics.NewRepository("file"))
	if err != nil {
		return nil, nil, err
	}
	if err := store.Lock(); err != nil {
		return nil, nil, err
	}
	release := func() {
		if err := store.Close(); err != nil {
			pterm.Warning.Println(err)
		}
	}

	if mode == existingChain {
		_, found, err := store.Load(ctx)
		if err != nil {
			release()
			return nil, nil, err
		}
		if !found {
			release()
			return nil, nil, fmt.Errorf("%w at %s", errNoChain, opts.StorePath)
		}
	}

	ledger, err := service.NewLedgerService(store, metrics.NewLedger(), nil, service.Config{
		Difficulty: opts.Difficulty,
		BackupDir:  opts.BackupDir,
	}, zap.NewNop())
	if err != nil {
		release()
		return nil, nil, err
	}
	if err := ledger.Initialize(ctx); err != nil {
		release()
		return nil, nil, err
	}
	return ledger, release, nil
}

type verifyCommand struct {
	commandContext
	difficultyOption
	Args struct {
		File string `positional-arg-name:"file" required:"true"`
	} `positional-args:"true"`
}

// verifySnapshot validates snap at no less than minDifficulty and returns the difficulty used.
// The declared difficulty of a document cannot lower the check.
func verifySnapshot(ctx context.Context, snap model.Snapshot, minDifficulty int) (chain.Validation, int, error) {
	difficulty := max(minDifficulty, snap.Difficulty)
	v, err := chain.ValidateBlocks(ctx, snap.Blocks, difficulty)
	return v, difficulty, err
}

func (c *verifyCommand) Execute(_ []string) error {
	snap, err := snapshot.ReadFile(c.Args.File)
	if err != nil {
		return fmt.Errorf("read %s: %w", c.Args.File, err)
	}
	if snap.Difficulty < c.Difficulty {
		pterm.Warning.Printfln("%s declares difficulty %d, checking at %d", c.Args.File, snap.Difficulty, c.Difficulty)
	}

	spinner, _ := pterm.DefaultSpinner.Start(fmt.Sprintf("validating %d blocks", len(snap.Blocks)))
	v, difficulty, err := verifySnapshot(c.ctx, snap, c.Difficulty)
	if err != nil {
		if spinner != nil {
			spinner.Fail(err.Error())
		}
		return err
	}
	if v.Valid {
		if spinner != nil {
			spinner.Success(fmt.Sprintf("%s is valid: %d blocks at difficulty %d", c.Args.File, len(snap.Blocks), difficulty))
		}
		return nil
	}
	if spinner != nil {
		spinner.Fail(fmt.Sprintf("%s is invalid", c.Args.File))
	}
	renderViolation(v.Err)
	return fmt.Errorf("chain invalid at block %d", *v.FirstBadPosition)
}

type infoCommand struct {
	commandContext
	ledgerOptions
}

func (c *infoCommand) Execute(_ []string) error {
	ledger, release, err := openLedger(c.ctx, c.ledgerOptions, existingChain)
	if err != nil {
		return err
	}
	defer release()

	info, err := ledger.Info(c.ctx)
	if err != nil {
		return err
	}
	return renderInfo(info)
}

type submitCommand struct {
	commandContext
	ledgerOptions
	Payload string `long:"payload" short:"p" description:"entry fields as a JSON object" required:"true"`
}

func (c *submitCommand) Execute(_ []string) error {
	fields, err := decodeFields(c.Payload)
	if err != nil {
		return err
	}
	ledger, release, err := openLedger(c.ctx, c.ledgerOptions, createChain)
	if err != nil {
		return err
	}
	defer release()

	spinner, _ := pterm.DefaultSpinner.Start("mining block")
	res, err := ledger.Submit(c.ctx, fields)
	if err != nil {
		if spinner != nil {
			spinner.Fail(err.Error())
		}
		return err
	}
	if spinner != nil {
		spinner.Success(fmt.Sprintf("sealed block %d", res.Block.Position))
	}
	if res.DurabilityWarning != nil {
		pterm.Warning.Printfln("block appended but not saved: %v", res.DurabilityWarning)
	}
	return renderBlocks(res.Block)
}

func decodeFields(raw string) (map[string]any, error) {
	dec := json.NewDecoder(bytes.NewReader([]byte(raw)))
	dec.UseNumber()
	var fields map[string]any
	if err := dec.Decode(&fields); err != nil {
		return nil, fmt.Errorf("decode payload: %w", err)
	}
	return fields, nil
}

type lookupCommand struct {
	commandContext
	ledgerOptions
	Batch  string `long:"batch" description:"batch id"`
	Origin string `long:"origin" description:"origin, matched case-insensitively"`
}

func (c *lookupCommand) Execute(_ []string) error {
	if (c.Batch == "") == (c.Origin == "") {
		return errors.New("exactly one of --batch or --origin is required")
	}
	ledger, release, err := openLedger(c.ctx, c.ledgerOptions, existingChain)
	if err != nil {
		return err
	}
	defer release()

	lookup := ledger.GetByOrigin
	key := c.Origin
	if c.Batch != "" {
		lookup = ledger.GetByBatch
		key = c.Batch
	}
	blocks, err := lookup(c.ctx, key)
	if err != nil {
		return err
	}
	if len(blocks) == 0 {
		pterm.Info.Printfln("no entries for %q", key)
		return nil
	}
	return renderBlocks(blocks...)
}

type backupCommand struct {
	commandContext
	ledgerOptions
}

func (c *backupCommand) Execute(_ []string) error {
	ledger, release, err := openLedger(c.ctx, c.ledgerOptions, existingChain)
	if err != nil {
		return err
	}
	defer release()

	path, err := ledger.CreateBackup(c.ctx)
	if err != nil {
		return err
	}
	pterm.Success.Printfln("backup written to %s", path)
	return nil
}
