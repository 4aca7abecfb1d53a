package options

import (
	_ "embed"
	"fmt"
	"strings"
	"sync"

	"cuelang.org/go/cue"
	"cuelang.org/go/cue/cuecontext"
	cueerrors "cuelang.org/go/cue/errors"

	oerrors "github.com/magic-expo/cli/internal/errors"
)

//go:embed schema.cue
var schemaCUE []byte

var (
	schemaOnce sync.Once
	schemaCtx  *cue.Context
	schemaDef  cue.Value
	schemaErr  error
)

func loadSchema() (*cue.Context, cue.Value, error) {
	schemaOnce.Do(func() {
		schemaCtx = cuecontext.New()
		v := schemaCtx.CompileBytes(schemaCUE, cue.Filename("schema.cue"))
		if v.Err() != nil {
			schemaErr = fmt.Errorf("compiling schema: %w", v.Err())
			return
		}
		schemaDef = v.LookupPath(cue.ParsePath("#Config"))
		if !schemaDef.Exists() {
			schemaErr = fmt.Errorf("schema is missing #Config")
		}
	})
	return schemaCtx, schemaDef, schemaErr
}

// Validate checks that the configuration is complete and obeys the tier
// coupling. Configurations produced by Resolve always pass.
func (c Config) Validate() error {
	switch {
	case !c.Tier.IsValid():
		return oerrors.NewValidationError(fmt.Sprintf("unknown template %q", c.Tier), "template", "")
	case !c.Navigation.IsValid():
		return oerrors.NewValidationError(fmt.Sprintf("unknown navigation %q", c.Navigation), "navigation", "")
	case !c.BuildProvider.IsValid():
		return oerrors.NewValidationError(fmt.Sprintf("unknown build provider %q", c.BuildProvider), "buildProvider", "")
	case strings.TrimSpace(c.Description) == "":
		return oerrors.NewValidationError("description must not be blank", "description", "")
	}

	ctx, def, err := loadSchema()
	if err != nil {
		return err
	}

	v := def.Unify(ctx.Encode(c))
	if err := v.Validate(cue.Concrete(true)); err != nil {
		return &oerrors.DetailError{
			Type:    "validation failed",
			Message: strings.TrimSpace(cueerrors.Details(err, nil)),
			Context: map[string]string{"Template": c.Tier.String()},
			Hint:    "Resolve options with options.Resolve before generating files.",
			Cause:   oerrors.ErrValidation,
		}
	}

	return nil
}
