package sources

import (
	"os"
	"path/filepath"
	"testing"

	"github.com/stretchr/testify/require"
)

const mameXML = `<?xml version="1.0"?>
<!DOCTYPE mame [
<!ELEMENT mame (machine+)>
]>
<mame build="0.261">
	<machine name="pacman" sourcefile="pacman/pacman.cpp" romof="puckman" cloneof="puckman">
		<description>Pac-Man (Midway)</description>
		<year>1980</year>
		<manufacturer>Namco (Midway license)</manufacturer>
		<rom name="pacman.6e" size="4096" crc="c1e6ab10" sha1="e87e059c5be45753f7e9f33dff851f16d6751181"/>
		<rom name="pacman.6f" size="bogus" merge="pacman.6f" status="baddump"/>
		<device_ref name="z80"/>
		<driver status="good"/>
	</machine>
	<machine name="puckman" sourcefile="pacman/pacman.cpp">
		<description>PuckMan (Japan set 1)</description>
		<year>198?</year>
		<manufacturer>Namco</manufacturer>
		<softwarelist name="puckman_cart"/>
		<driver status="good"/>
	</machine>
	<machine name="neogeo" sourcefile="neogeo/neogeo.cpp" isbios="yes" runnable="no">
		<description>Neo-Geo MV-6F</description>
		<year>1990</year>
		<manufacturer>SNK</manufacturer>
		<biosset name="euro" description="Europe MVS (Ver. 2)"/>
		<disk name="neocd" sha1="abc" region="cdrom" status="nodump"/>
	</machine>
	<machine name="invaders" sourcefile="mw8080bw.cpp" sampleof="invaders">
		<description>Space Invaders / Space Invaders M</description>
		<year>1978</year>
		<manufacturer>Taito</manufacturer>
		<sample name="1"/>
		<sample name="2"/>
	</machine>
	<machine name="z80" sourcefile="z80.cpp" isdevice="yes" runnable="no">
		<description>Zilog Z80</description>
	</machine>
</mame>
`

const catverINI = `;; CatVer 0.261 ;;
[Category]
pacman=Maze / Collect
puckman=Maze / Collect * Mature *
invaders=Shooter / Walking
neogeo=System / BIOS
z80=Misc.
unknown=Maze / Collect
=Orphan / Value

[VerAdded]
pacman=0.01
`

const seriesINI = `[FOLDER_SETTINGS]
RootFolderIcon=mame
SubFolderIcon=folder

[ROOT_FOLDER]

[Pac-Man]
pacman
puckman
mspacman

[Space Invaders]
invaders
`

const languagesINI = `;; Languages ;;
[English]
pacman
invaders

[Japanese]
puckman
pacman

[English]
pacman
`

const nplayersINI = `;; nplayers.ini ;;
[NPlayers]
pacman=2P alt
puckman=2P alt / 1P
neogeo=BIOS
z80=Device
ghost=1P
`

const historyXML = `<?xml version="1.0" encoding="UTF-8"?>
<history version="2.61">
	<entry>
		<systems>
			<system name="pacman" />
			<system name="puckman" />
			<system name="mspacman" />
		</systems>
		<text>Intro line before any heading.

- TECHNICAL -

Runs on a Z80.

- TRIVIA -

Pac-Man was originally called Puck-Man.

- SERIES -

- STAFF -

Toru Iwatani

- EASTER EGGS -

Hidden message.
</text>
	</entry>
	<entry>
		<systems>
			<system name="invaders" />
		</systems>
		<text>- DESCRIPTION -
Aliens descend.
</text>
	</entry>
</history>
`

const resourcesXML = `<?xml version="1.0"?>
<datafile>
	<machine name="cabinets">
		<description>cabinets</description>
		<rom name="cabinets\pacman.png" size="1024" crc="aa" sha1="bb"/>
		<rom name="cabinets\ghost.png" size="10"/>
		<rom name="snap\puckman.png" size="10"/>
		<rom name="flat.png" size="10"/>
	</machine>
	<machine name="snap">
		<rom name="snap\puckman.png" size="2048"/>
		<rom name="cabinets\pacman.png" size="1"/>
	</machine>
</datafile>
`

// writeFixtures writes every source into dir using the names the archives
// unpack to.
func writeFixtures(t *testing.T, dir string) map[Kind]string {
	t.Helper()
	files := map[Kind][2]string{
		KindMAME:      {"MAME 0.261.dat", mameXML},
		KindCatver:    {"catver.ini", catverINI},
		KindSeries:    {"series.ini", seriesINI},
		KindLanguages: {"languages.ini", languagesINI},
		KindNPlayers:  {"nplayers.ini", nplayersINI},
		KindHistory:   {"history.xml", historyXML},
		KindResources: {"pS_AllProject_20231231_261_(mame).dat", resourcesXML},
	}
	paths := make(map[Kind]string, len(files))
	for kind, f := range files {
		p := filepath.Join(dir, f[0])
		require.NoError(t, os.WriteFile(p, []byte(f[1]), 0o644))
		paths[kind] = p
	}
	return paths
}
