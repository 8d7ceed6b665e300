package commands

import (
	"context"
	"path/filepath"

	"booq/internal/application"
	"booq/internal/domain"
	"booq/internal/ports"
)

// PublishResult contains the result of publishing a rendered gallery
type PublishResult struct {
	IndexPath string
	Copied    int
	Total     int
}

// PublishCommand writes a rendered gallery into the output directory
type PublishCommand struct {
	writer    ports.OutputWriter
	reporter  ports.Reporter
	Output    *domain.RenderedOutput
	TargetDir string
}

// NewPublishCommand creates a new PublishCommand
func NewPublishCommand(writer ports.OutputWriter, reporter ports.Reporter, output *domain.RenderedOutput, targetDir string) *PublishCommand {
	return &PublishCommand{
		writer:    writer,
		reporter:  reporter,
		Output:    output,
		TargetDir: targetDir,
	}
}

// Validate checks the command has something to publish and somewhere to put it
func (c *PublishCommand) Validate() error {
	if err := application.ValidateRequired("output_path", c.TargetDir); err != nil {
		return err
	}
	if c.Output == nil {
		return &application.ConfigError{Field: "output", Message: "nothing to publish"}
	}
	return nil
}

// Execute replaces the image folder, writes the page and copies images.
// The first failing file operation aborts the run.
func (c *PublishCommand) Execute(ctx context.Context) (*PublishResult, error) {
	if err := c.Validate(); err != nil {
		return nil, err
	}

	if err := c.writer.EnsureDir(c.TargetDir); err != nil {
		return nil, fsError("create", c.TargetDir, err)
	}

	imagesDir := filepath.Join(c.TargetDir, domain.ImagesDirName)
	if err := c.writer.ReplaceDir(imagesDir); err != nil {
		return nil, fsError("replace", imagesDir, err)
	}

	indexPath := filepath.Join(c.TargetDir, domain.IndexFileName)
	if err := c.writer.WriteFile(indexPath, c.Output.Document); err != nil {
		return nil, fsError("write", indexPath, err)
	}
	c.reporter.Success("%s → %s", domain.IndexFileName, indexPath)

	c.reporter.Info("Copying images to %s ...", imagesDir)
	result := &PublishResult{IndexPath: indexPath, Total: len(c.Output.Copies)}
	for _, cp := range c.Output.Copies {
		if err := ctx.Err(); err != nil {
			return nil, err
		}
		target := filepath.Join(imagesDir, cp.Target)
		copied, err := c.writer.CopyIfNewer(cp.Source, target)
		if err != nil {
			return nil, fsError("copy", cp.Source, err)
		}
		if copied {
			result.Copied++
		}
	}
	c.reporter.Success("%d images copied (%d total)", result.Copied, result.Total)

	return result, nil
}

func fsError(op, path string, err error) error {
	return &application.FileSystemError{Op: op, Path: path, Err: err}
}
