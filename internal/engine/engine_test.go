package engine_test

import (
	"context"
	"errors"
	"path/filepath"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/rshade/carbonfocus/internal/engine"
	"github.com/rshade/carbonfocus/internal/input"
	"github.com/rshade/carbonfocus/internal/session"
	"github.com/rshade/carbonfocus/internal/targets"
)

func testdata(name string) string {
	return filepath.Join("testdata", name)
}

func newStore(t *testing.T) *session.Store {
	t.Helper()
	store, err := session.NewStore(t.TempDir(), true, 0)
	require.NoError(t, err)
	return store
}

func TestCalculateFiles_MergesInOrder(t *testing.T) {
	eng := engine.New(engine.WithConcurrency(2))

	res, err := eng.CalculateFiles(context.Background(), []string{testdata("plant.yaml"), testdata("office.yaml")})
	require.NoError(t, err)

	require.Len(t, res.Files, 2)
	assert.Equal(t, testdata("plant.yaml"), res.Files[0].Source)
	assert.Equal(t, testdata("office.yaml"), res.Files[1].Source)
	assert.Equal(t, "Acme Manufacturing", res.Organization.Name)
	assert.Empty(t, res.SessionID)

	assert.InDelta(t, 1200*0.00185, res.Snapshot.Scope1Total, 1e-9)
	assert.InDelta(t, 100000*0.000276, res.Snapshot.Scope2Total, 1e-9)
	assert.InDelta(t, 20000*0.00017, res.Snapshot.Scope3Total, 1e-9)
	assert.InDelta(t,
		res.Snapshot.Scope1Total+res.Snapshot.Scope2Total+res.Snapshot.Scope3Total,
		res.Snapshot.Total, 1e-9)

	gas := res.Snapshot.Scope1Breakdown
	require.Len(t, gas, 1)
	assert.InDelta(t, 1200*0.00185, gas[0].Emissions, 1e-9)
}

func TestCalculateFiles_Errors(t *testing.T) {
	eng := engine.New()

	_, err := eng.CalculateFiles(context.Background(), nil)
	require.ErrorIs(t, err, engine.ErrNoInputs)

	_, err = eng.CalculateFiles(context.Background(), []string{testdata("plant.yaml"), testdata("missing.yaml")})
	require.ErrorIs(t, err, input.ErrRead)

	_, err = eng.CalculateFiles(context.Background(), []string{testdata("invalid.yaml")})
	var verr *input.ValidationError
	require.True(t, errors.As(err, &verr))
	assert.Len(t, verr.Fields, 2)
}

func TestCalculateFiles_Canceled(t *testing.T) {
	ctx, cancel := context.WithCancel(context.Background())
	cancel()

	_, err := engine.New().CalculateFiles(ctx, []string{testdata("plant.yaml")})
	require.ErrorIs(t, err, context.Canceled)
}

func TestCalculateDocument(t *testing.T) {
	doc := []byte(`{"organization": {"name": "Globex"}, "scope1": {"other_direct": 7.5}}`)

	res, err := engine.New().CalculateDocument(context.Background(), doc, "request")
	require.NoError(t, err)
	assert.Equal(t, "Globex", res.Organization.Name)
	assert.InDelta(t, 7.5, res.Snapshot.Total, 1e-9)
	require.Len(t, res.Files, 1)
	assert.Equal(t, "request", res.Files[0].Source)

	_, err = engine.New().CalculateDocument(context.Background(), []byte("scope1: ["), "bad")
	require.ErrorIs(t, err, input.ErrDecode)
}

func TestSessionLifecycle(t *testing.T) {
	ctx := context.Background()
	eng := engine.New(engine.WithSessionStore(newStore(t)))

	_, err := eng.Session(ctx)
	require.ErrorIs(t, err, session.ErrSessionNotFound)
	require.NoError(t, eng.RecordTarget(ctx, targets.Target{}), "no session yet is not an error")

	res, err := eng.CalculateFiles(ctx, []string{testdata("plant.yaml")})
	require.NoError(t, err)
	require.NotEmpty(t, res.SessionID)

	sess, err := eng.Session(ctx)
	require.NoError(t, err)
	assert.Equal(t, res.SessionID, sess.ID)
	assert.Equal(t, []string{testdata("plant.yaml")}, sess.Sources)
	assert.InDelta(t, res.Snapshot.Total, sess.Snapshot.Total, 1e-9)
	assert.Nil(t, sess.Target)

	tgt, err := targets.ProjectCompounding(targets.Policy{
		BaseEmissions: res.Snapshot.Total, ReductionPercentage: 42, BaseYear: 2023, TargetYear: 2030,
	})
	require.NoError(t, err)
	require.NoError(t, eng.RecordTarget(ctx, tgt))

	sess, err = eng.Session(ctx)
	require.NoError(t, err)
	require.NotNil(t, sess.Target)
	assert.InDelta(t, tgt.TargetEmissions, sess.Target.TargetEmissions, 1e-9)
}

func TestSessionWithoutStore(t *testing.T) {
	eng := engine.New()

	_, err := eng.Session(context.Background())
	require.ErrorIs(t, err, session.ErrSessionDisabled)
	require.NoError(t, eng.RecordTarget(context.Background(), targets.Target{}))

	disabled, err := session.NewStore("", false, 0)
	require.NoError(t, err)
	res, err := engine.New(engine.WithSessionStore(disabled)).
		CalculateFiles(context.Background(), []string{testdata("office.yaml")})
	require.NoError(t, err)
	assert.Empty(t, res.SessionID)
}
