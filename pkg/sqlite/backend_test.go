package sqlite_test

import (
	"testing"

	"github.com/mesh-intelligence/roster/pkg/sqlite"
	"github.com/mesh-intelligence/roster/pkg/types"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestNewBackendRoundTrip(t *testing.T) {
	r := sqlite.NewBackend()
	require.NoError(t, r.Attach(types.Config{
		Backend:  types.BackendSQLite,
		DataDir:  t.TempDir(),
		Database: types.DefaultDatabase,
	}))
	defer r.Detach()

	id, err := r.AddDepartment("Engineering")
	require.NoError(t, err)

	departments, err := r.ListDepartments()
	require.NoError(t, err)
	assert.Equal(t, []types.Department{{ID: id, Name: "Engineering"}}, departments)
}
