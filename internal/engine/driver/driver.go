// Package driver implements the single-target build state machine.
package driver

import (
	"context"
	"errors"
	"io"
	"io/fs"
	"os"

	"go.trai.ch/cargostep/internal/core/domain"
	"go.trai.ch/cargostep/internal/core/ports"
	"go.trai.ch/zerr"
)

// Driver builds one crate by walking the phases from PhaseInit to a terminal phase.
type Driver struct {
	manifest  ports.ManifestReader
	store     ports.MetadataStore
	vendor    ports.VendorConfigWriter
	toolchain ports.Toolchain
	parser    ports.BuildOutputParser
	depfiles  ports.DepfileNormalizer
	publisher ports.ArtifactPublisher
	tracer    ports.Tracer
	logger    ports.Logger
	stdout    io.Writer
}

// New creates a new Driver. Toolchain transcripts are written to os.Stdout
// until SetOutput is called.
func New(
	manifest ports.ManifestReader,
	store ports.MetadataStore,
	vendor ports.VendorConfigWriter,
	toolchain ports.Toolchain,
	parser ports.BuildOutputParser,
	depfiles ports.DepfileNormalizer,
	publisher ports.ArtifactPublisher,
	tracer ports.Tracer,
	logger ports.Logger,
) *Driver {
	return &Driver{
		manifest:  manifest,
		store:     store,
		vendor:    vendor,
		toolchain: toolchain,
		parser:    parser,
		depfiles:  depfiles,
		publisher: publisher,
		tracer:    tracer,
		logger:    logger,
		stdout:    os.Stdout,
	}
}

// SetOutput sets the writer that receives toolchain failure transcripts.
func (d *Driver) SetOutput(w io.Writer) {
	d.stdout = w
}

// build is the mutable state of a single Run.
type build struct {
	opts     *domain.BuildOptions
	target   domain.Target
	pkgName  string
	deps     []domain.DependencyInfo
	buildInv *domain.Invocation
	testInv  *domain.Invocation
	testOut  []byte
	phase    domain.Phase
}

// Run builds the target described by opts and returns the phase it stopped in.
// A non-zero toolchain exit is reported as *domain.ToolchainFailure.
func (d *Driver) Run(ctx context.Context, opts *domain.BuildOptions) (domain.Phase, error) {
	if err := opts.Validate(); err != nil {
		return domain.PhaseInit, err
	}

	target, err := domain.ParseLabel(opts.Label)
	if err != nil {
		return domain.PhaseInit, err
	}

	ctx, span := d.tracer.Start(ctx, target.String())
	defer span.End()
	span.SetAttribute("type", string(opts.Type))
	span.SetAttribute("triple", opts.TargetTriple)
	span.SetAttribute("release", opts.Release)
	d.tracer.EmitPlan(ctx, Plan(opts.WithTests))

	b := &build{
		opts:   opts,
		target: target,
		phase:  domain.PhaseInit,
	}

	for {
		next := b.phase.Next(opts.WithTests)
		if next == b.phase {
			return b.phase, nil
		}

		if err := d.enter(ctx, b, next); err != nil {
			span.RecordError(err)
			if b.phase.IsFailure() {
				d.logger.Info("toolchain failed", "label", target.String(), "phase", b.phase.String())
			}
			return b.phase, err
		}
	}
}

// Plan lists the phases a successful run walks through.
func Plan(withTests bool) []string {
	var phases []string
	for p := domain.PhaseInit; ; {
		next := p.Next(withTests)
		if next == p {
			return phases
		}
		phases = append(phases, next.String())
		p = next
	}
}

// enter performs the work that moves b into phase, inside a span named after it.
func (d *Driver) enter(ctx context.Context, b *build, phase domain.Phase) error {
	ctx, span := d.tracer.Start(ctx, phase.String())
	defer span.End()

	d.logger.Debug("entering phase", "phase", phase.String(), "label", b.target.String())

	var err error
	switch phase {
	case domain.PhaseManifestRead:
		err = d.readManifest(b)
	case domain.PhaseConfigWritten:
		err = d.writeConfig(b)
	case domain.PhaseBuilding:
		err = d.compile(ctx, b, span)
	case domain.PhaseSucceeded:
		depfile := domain.DepfilePath(b.opts.OutDir, b.opts.TargetTriple, b.opts.Release, b.opts.Type, b.opts.Name)
		err = d.depfiles.Normalize(depfile, b.opts.RootOutDir)
	case domain.PhaseTestBuilding:
		err = d.compileTests(ctx, b, span)
	case domain.PhaseTestSucceeded:
		err = d.linkTests(b)
	}

	if err != nil {
		span.RecordError(err)
		return err
	}

	b.phase = phase
	return nil
}

func (d *Driver) readManifest(b *build) error {
	name, err := d.manifest.PackageName(b.opts.CrateRoot)
	if err != nil {
		return err
	}
	b.pkgName = name

	if !b.opts.GatherDeps {
		return nil
	}

	deps, err := d.gatherDeps(b.opts)
	if err != nil {
		return err
	}
	b.deps = deps
	return nil
}

// gatherDeps reads the metadata published by each dependency label.
// Dependencies that never published metadata are skipped.
func (d *Driver) gatherDeps(opts *domain.BuildOptions) ([]domain.DependencyInfo, error) {
	deps := make([]domain.DependencyInfo, 0, len(opts.Deps))
	for _, label := range opts.Deps {
		dep, err := domain.ParseLabel(label)
		if err != nil {
			return nil, err
		}

		info, err := d.store.Read(domain.DependencyInfoPath(opts.RootGenDir, dep))
		if err != nil {
			return nil, err
		}
		if info == nil {
			d.logger.Debug("dependency has no metadata", "dep", label)
			continue
		}
		deps = append(deps, *info)
	}
	return deps, nil
}

func (d *Driver) writeConfig(b *build) error {
	nativeLibs := domain.AggregateNativeLibs(b.deps)

	if b.opts.Type == domain.ArtifactLib {
		info := domain.DependencyInfo{
			Name:             b.pkgName,
			NativeLibs:       nativeLibs,
			BasePath:         b.opts.GenDir,
			HasGeneratedCode: true,
		}
		if err := d.store.Publish(b.opts.GenDir, b.target, info); err != nil {
			return err
		}
	}

	cfg := domain.VendorConfig{
		VendorDir:      b.opts.VendorDir,
		TargetTriple:   b.opts.TargetTriple,
		SharedLibsRoot: b.opts.SharedLibs,
		NativeLibs:     nativeLibs,
	}
	if err := d.vendor.Write(domain.CargoConfigPath(b.opts.GenDir), cfg); err != nil {
		return err
	}

	lockPath := domain.LockFilePath(b.opts.GenDir)
	if err := os.Remove(lockPath); err != nil && !errors.Is(err, fs.ErrNotExist) {
		return zerr.With(zerr.Wrap(err, domain.ErrLockfileCleanupFailed.Error()), "path", lockPath)
	}
	return nil
}

// compile runs the main toolchain build.
func (d *Driver) compile(ctx context.Context, b *build, span ports.Span) error {
	b.buildInv = BuildInvocation(b.opts)
	res, err := d.invoke(ctx, b.buildInv, span)
	if err != nil {
		return err
	}

	if !res.Succeeded() {
		d.surface(res.Transcript(), span)
		b.phase = domain.PhaseBuilding.Fail()
		return &domain.ToolchainFailure{Phase: domain.PhaseBuilding, ExitCode: res.ExitCode}
	}
	return nil
}

// compileTests runs the no-run test build with JSON messages.
func (d *Driver) compileTests(ctx context.Context, b *build, span ports.Span) error {
	b.testInv = TestInvocation(b.buildInv)
	res, err := d.invoke(ctx, b.testInv, span)
	if err != nil {
		return err
	}

	if !res.Succeeded() {
		// JSON messages are not readable; rerun in human-readable mode for the transcript.
		rerun, err := d.invoke(ctx, b.testInv.WithoutLastArg(), span)
		if err != nil {
			return err
		}
		d.surface(rerun.Transcript(), span)
		b.phase = domain.PhaseTestBuilding.Fail()
		return &domain.ToolchainFailure{Phase: domain.PhaseTestBuilding, ExitCode: res.ExitCode}
	}

	b.testOut = res.Stdout
	return nil
}

// linkTests locates the test binary in the JSON messages and publishes its link.
func (d *Driver) linkTests(b *build) error {
	exe, ok, err := d.parser.TestExecutable(b.testOut)
	if err != nil {
		return err
	}
	if !ok {
		return zerr.With(zerr.With(domain.ErrToolchainContractViolation,
			"reason", "no test artifact reported"), "invocation_id", b.testInv.ID())
	}

	return d.publisher.Link(exe, domain.TestLinkPath(b.opts.OutDir, b.opts.Name, b.opts.Type))
}

func (d *Driver) invoke(ctx context.Context, inv *domain.Invocation, span ports.Span) (*domain.InvocationResult, error) {
	span.SetAttribute("invocation_id", inv.ID())
	res, err := d.toolchain.Run(ctx, inv)
	if err != nil {
		return nil, err
	}
	span.SetAttribute("exit_code", res.ExitCode)
	return res, nil
}

// surface prints a failure transcript verbatim for the invoking scheduler.
func (d *Driver) surface(transcript []byte, span ports.Span) {
	_, _ = span.Write(transcript)
	if _, err := d.stdout.Write(transcript); err != nil {
		d.logger.Warn("failed to write toolchain output", "error", err.Error())
	}
}
