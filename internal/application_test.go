package application

import (
	"context"
	"net"
	"net/http"
	"net/http/httptest"
	"strings"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/rocketscienceinc/tictactoe-engine/internal/apperror"
	"github.com/rocketscienceinc/tictactoe-engine/internal/config"
	"github.com/rocketscienceinc/tictactoe-engine/internal/entity"
	"github.com/rocketscienceinc/tictactoe-engine/internal/repository"
	"github.com/rocketscienceinc/tictactoe-engine/internal/valuetable"
	"github.com/rocketscienceinc/tictactoe-engine/testing/suite"
)

func fileConfig(dir string) *config.Config {
	return &config.Config{
		LogLevel: "debug",
		HTTPPort: "0",
		ValueTables: config.ValueTables{
			Source:   config.SourceFile,
			Dir:      dir,
			XFile:    "vx.npy",
			OFile:    "vo.npy",
			Encoding: valuetable.EncodingBase3,
		},
	}
}

func postMove(t *testing.T, handler http.Handler, body string) *httptest.ResponseRecorder {
	t.Helper()

	req := httptest.NewRequest(http.MethodPost, "/move", strings.NewReader(body))
	req.Header.Set("Content-Type", "application/json")
	rec := httptest.NewRecorder()
	handler.ServeHTTP(rec, req)

	return rec
}

func TestBuild(t *testing.T) {
	ctx := context.Background()

	t.Run("Serves moves from file tables", func(t *testing.T) {
		// Given: tables where X prefers the center
		dir := t.TempDir()
		values := suite.ConstantTable(0)
		values[valuetable.Base3{Empty: 0, X: 1, O: 2}.Encode(entity.Grid{{}, {0, entity.MarkX, 0}})] = 1
		suite.WriteTable(t, dir, "vx.npy", values)
		suite.WriteTable(t, dir, "vo.npy", suite.ConstantTable(0))

		// When: the application is built and asked for a move
		server, err := Build(ctx, suite.Logger(t), fileConfig(dir))
		require.NoError(t, err)

		rec := postMove(t, server.Handler(), `{"board":[["","",""],["","",""],["","",""]],"player":"X"}`)

		// Then: the center is played
		assert.Equal(t, http.StatusOK, rec.Code)
		assert.JSONEq(t, `{
			"move": {"row": 1, "col": 1},
			"board": [["","",""],["","X",""],["","",""]],
			"game_state": {"is_over": false, "winner": null, "is_draw": false}
		}`, rec.Body.String())
	})

	t.Run("Refuses to start without tables", func(t *testing.T) {
		// Given: an empty table directory
		dir := t.TempDir()

		// When: the application is built
		server, err := Build(ctx, suite.Logger(t), fileConfig(dir))

		// Then: the missing tables are fatal
		require.ErrorIs(t, err, apperror.ErrTableUnavailable)
		assert.Nil(t, server)
	})

	t.Run("Rejects unknown encodings", func(t *testing.T) {
		conf := fileConfig(t.TempDir())
		conf.ValueTables.Encoding = "unknown"

		_, err := Build(ctx, suite.Logger(t), conf)

		require.ErrorIs(t, err, valuetable.ErrUnknownEncoding)
	})

	t.Run("Requires a redis host for redis tables", func(t *testing.T) {
		conf := fileConfig(t.TempDir())
		conf.ValueTables.Source = config.SourceRedis

		_, err := Build(ctx, suite.Logger(t), conf)

		require.ErrorIs(t, err, ErrAddrNotFound)
	})
}

func TestBuild_Redis(t *testing.T) {
	ctx, st := suite.New(t)

	host, port, err := net.SplitHostPort(st.Addr)
	require.NoError(t, err)

	// Given: file tables published to redis by a first instance
	dir := t.TempDir()
	suite.WriteTable(t, dir, "vx.npy", suite.ConstantTable(0))
	oValues := suite.ConstantTable(0)
	oValues[valuetable.Base3{Empty: 0, X: 1, O: 2}.Encode(entity.Grid{{entity.MarkX}, {}, {0, 0, entity.MarkO}})] = 1
	suite.WriteTable(t, dir, "vo.npy", oValues)

	publisher := fileConfig(dir)
	publisher.ValueTables.Publish = true
	publisher.Redis = config.Redis{Host: host, Port: port}

	_, err = Build(ctx, st.Logger, publisher)
	require.NoError(t, err)

	stored, err := repository.NewTableRepository(st.Storage).GetByMark(ctx, entity.MarkO)
	require.NoError(t, err)
	require.Equal(t, len(oValues), stored.Len())

	// When: a second instance reads its tables from redis only
	reader := fileConfig(t.TempDir())
	reader.ValueTables.Source = config.SourceRedis
	reader.Redis = config.Redis{Host: host, Port: port}

	server, err := Build(ctx, st.Logger, reader)
	require.NoError(t, err)

	rec := postMove(t, server.Handler(), `{"board":[["X","",""],["","",""],["","",""]],"player":"O"}`)

	// Then: it answers with the published O table
	assert.Equal(t, http.StatusOK, rec.Code)
	assert.Contains(t, rec.Body.String(), `"move":{"row":2,"col":2}`)
}
