package tmx

import (
	"os"
	"testing"
	"testing/fstest"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/younwookim/shadowgrove/internal/domain/entity"
)

const smallMap = `<?xml version="1.0" encoding="UTF-8"?>
<map version="1.10" orientation="orthogonal" renderorder="right-down" width="3" height="2" tilewidth="16" tileheight="16" infinite="0">
 <tileset firstgid="1" name="t" tilewidth="16" tileheight="16" tilecount="1" columns="1">
  <image source="t.png" width="16" height="16"/>
 </tileset>
 <layer id="1" name="collisions" width="3" height="2">
  <data encoding="csv">
1,0,0,
0,0,1
</data>
 </layer>
 <objectgroup id="2" name="PlayerSpawn">
  <object id="1" x="24" y="8"><point/></object>
 </objectgroup>
 <objectgroup id="3" name="Enemies">
  <object id="2" x="40" y="8">
   <properties>
    <property name="kind" value="spirit-boxer"/>
    <property name="patrol" value="40,8; 8,24"/>
   </properties>
   <point/>
  </object>
 </objectgroup>
</map>
`

func TestLoadStage_SmallMap(t *testing.T) {
	fsys := fstest.MapFS{"small.tmx": {Data: []byte(smallMap)}}

	stage, err := LoadStage(fsys, "small.tmx")
	require.NoError(t, err)

	assert.Equal(t, 3, stage.Width)
	assert.Equal(t, 2, stage.Height)
	assert.Equal(t, 16, stage.TileSize)
	assert.True(t, stage.GetTile(0, 0).Solid)
	assert.False(t, stage.GetTile(1, 0).Solid)
	assert.True(t, stage.GetTile(2, 1).Solid)

	assert.Equal(t, 24.0, stage.SpawnX)
	assert.Equal(t, 8.0, stage.SpawnY)

	require.Len(t, stage.Spawns, 1)
	spawn := stage.Spawns[0]
	assert.Equal(t, entity.KindSpiritBoxer, spawn.Kind)
	assert.Equal(t, 40.0, spawn.X)
	assert.Equal(t, []entity.Point{{X: 40, Y: 8}, {X: 8, Y: 24}}, spawn.Patrol)
}

func TestLoadStage_TempleMap(t *testing.T) {
	stage, err := LoadStage(os.DirFS("../../../cmd/game/configs"), "maps/temple.tmx")
	require.NoError(t, err)

	assert.Equal(t, 40, stage.Width)
	assert.Equal(t, 30, stage.Height)
	assert.True(t, stage.GetTile(0, 0).Solid)
	assert.False(t, stage.IsSolidAt(stage.SpawnX, stage.SpawnY))

	kinds := map[entity.Kind]int{}
	for _, s := range stage.Spawns {
		kinds[s.Kind]++
	}
	assert.Equal(t, 1, kinds[entity.KindTempleGuardian])
	assert.Equal(t, 2, kinds[entity.KindShadowBat])
	assert.Equal(t, 1, kinds[entity.KindSpiritBoxer])
}

func TestLoadStage_Missing(t *testing.T) {
	_, err := LoadStage(fstest.MapFS{}, "missing.tmx")

	require.Error(t, err)
	assert.Contains(t, err.Error(), "failed to load TMX missing.tmx")
}

const chunkedMap = `<?xml version="1.0" encoding="UTF-8"?>
<map version="1.10" orientation="orthogonal" renderorder="right-down" width="16" height="16" tilewidth="16" tileheight="16" infinite="1">
 <tileset firstgid="1" name="t" tilewidth="16" tileheight="16" tilecount="1" columns="1">
  <image source="t.png" width="16" height="16"/>
 </tileset>
 <layer id="1" name="collisions" width="16" height="16">
  <data encoding="csv">
   <chunk x="0" y="0" width="2" height="1">
1,0
</chunk>
  </data>
 </layer>
</map>
`

func TestLoadStage_InfiniteMap(t *testing.T) {
	fsys := fstest.MapFS{"chunked.tmx": {Data: []byte(chunkedMap)}}

	var err error
	assert.NotPanics(t, func() {
		_, err = LoadStage(fsys, "chunked.tmx")
	})

	require.Error(t, err)
	assert.Contains(t, err.Error(), "failed to load TMX chunked.tmx")
}

func TestParsePatrol(t *testing.T) {
	tests := []struct {
		name    string
		in      string
		want    []entity.Point
		wantErr bool
	}{
		{"empty", "", nil, false},
		{"single", "1,2", []entity.Point{{X: 1, Y: 2}}, false},
		{"spaces", " 1 , 2 ; 3,4 ", []entity.Point{{X: 1, Y: 2}, {X: 3, Y: 4}}, false},
		{"missing y", "1", nil, true},
		{"not a number", "a,2", nil, true},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			got, err := parsePatrol(tt.in)
			if tt.wantErr {
				assert.Error(t, err)
				return
			}
			require.NoError(t, err)
			assert.Equal(t, tt.want, got)
		})
	}
}
