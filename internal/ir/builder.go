package ir

import (
	"fmt"

	llvm "github.com/llir/llvm/ir"
	"github.com/llir/llvm/ir/constant"
	"github.com/llir/llvm/ir/types"
	"github.com/llir/llvm/ir/value"
	"github.com/tliron/commonlog"

	"minic/internal/ast"
	"minic/internal/errors"
)

var log = commonlog.GetLogger("minic.ir")

// Builder converts an AST to an LLVM module. A Builder owns the insertion
// cursor and the symbol table for one compilation at a time.
type Builder struct {
	options options

	module       *llvm.Module
	currentFunc  *llvm.Func
	currentBlock *llvm.Block
	runtime      *runtime
	symbols      *SymbolTable

	blockCounter int
	valueCounter int
}

// NewBuilder creates a new IR builder
func NewBuilder(opts ...Option) *Builder {
	o := options{entryName: DefaultEntryName}
	for _, opt := range opts {
		opt(&o)
	}
	return &Builder{options: o}
}

// Build lowers every statement of program in source order into the entry
// function and closes it with a zero status. Any error discards the module.
func (b *Builder) Build(program *ast.Program) (*llvm.Module, error) {
	if program == nil {
		return nil, errors.Internalf("nil program")
	}

	b.reset()

	for _, stmt := range program.Statements {
		if _, err := b.buildStatement(stmt); err != nil {
			return nil, err
		}
	}

	block, err := b.insertionBlock()
	if err != nil {
		return nil, err
	}
	block.NewRet(constant.NewInt(types.I32, 0))
	b.currentBlock = nil

	log.Debugf("built %s: %d statements, %d blocks, %d symbols",
		b.options.entryName, len(program.Statements), len(b.currentFunc.Blocks), b.symbols.Len())

	return b.module, nil
}

// Symbols exposes the symbol table of the last build.
func (b *Builder) Symbols() *SymbolTable {
	return b.symbols
}

func (b *Builder) reset() {
	b.module = llvm.NewModule()
	b.module.SourceFilename = b.options.moduleName
	b.runtime = newRuntime(b.module)
	b.symbols = NewSymbolTable()
	b.blockCounter = 0
	b.valueCounter = 0

	b.currentFunc = b.module.NewFunc(b.options.entryName, types.I32)
	b.currentBlock = b.createBlock("entry")
}

// Helper methods

func (b *Builder) createBlock(label string) *llvm.Block {
	block := b.currentFunc.NewBlock(label)
	log.Debugf("created block %s", label)
	return block
}

// insertionBlock returns the block new instructions go into. Emitting into a
// missing or already terminated block is a translator defect.
func (b *Builder) insertionBlock() (*llvm.Block, error) {
	if b.currentBlock == nil {
		return nil, errors.Internalf("no open block to emit into")
	}
	if b.currentBlock.Term != nil {
		return nil, errors.Internalf("block %q is already terminated", b.currentBlock.Name())
	}
	return b.currentBlock, nil
}

// allocate reserves a fresh i32 slot for name. Every binding gets its own
// slot, so re-assignment never writes through an older one.
func (b *Builder) allocate(block *llvm.Block, name string) *llvm.InstAlloca {
	slot := block.NewAlloca(types.I32)
	slot.SetName(fmt.Sprintf("%s.%d", name, b.valueCounter))
	b.valueCounter++
	return slot
}

// buildStatement lowers one statement into the current block.
func (b *Builder) buildStatement(stmt ast.Stmt) (value.Value, error) {
	switch s := stmt.(type) {
	case *ast.AssignStmt:
		return b.buildAssign(s)
	case *ast.InputStmt:
		return b.buildInput(s)
	case *ast.PrintStmt:
		return b.buildPrint(s)
	default:
		return nil, errors.Internalf("unknown statement type %T", stmt)
	}
}

func (b *Builder) buildAssign(stmt *ast.AssignStmt) (value.Value, error) {
	val, err := b.buildExpression(stmt.Value)
	if err != nil {
		return nil, err
	}

	// The expression may have moved the cursor past a division guard
	block, err := b.insertionBlock()
	if err != nil {
		return nil, err
	}

	slot := b.allocate(block, stmt.Name.Value)
	block.NewStore(val, slot)
	b.symbols.Bind(stmt.Name.Value, slot)

	return slot, nil
}

func (b *Builder) buildInput(stmt *ast.InputStmt) (value.Value, error) {
	block, err := b.insertionBlock()
	if err != nil {
		return nil, err
	}

	format, ok := b.runtime.globalConstants[ScanFormatName]
	if b.runtime.scanf == nil || !ok {
		return nil, errors.Internalf("input primitive %s is not declared", ScanfName)
	}

	slot := b.allocate(block, stmt.Name.Value)
	block.NewCall(b.runtime.scanf, stringPointer(format), slot)
	b.symbols.Bind(stmt.Name.Value, slot)

	return slot, nil
}

func (b *Builder) buildPrint(stmt *ast.PrintStmt) (value.Value, error) {
	val, err := b.buildExpression(stmt.Value)
	if err != nil {
		return nil, err
	}

	block, err := b.insertionBlock()
	if err != nil {
		return nil, err
	}

	format, ok := b.runtime.globalConstants[PrintFormatName]
	if b.runtime.printf == nil || !ok {
		return nil, errors.Internalf("output primitive %s is not declared", PrintfName)
	}

	block.NewCall(b.runtime.printf, stringPointer(format), val)
	return val, nil
}
