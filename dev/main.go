// Scaffolds a local playground under dev/.state: an empty sync
// journal, a miniature site checkout with injection markers and a
// config pointing at both. Run a sync against it with
//
//	go run ./cmd/magnetsync -c dev/.state/config.json5 sync
package main

import (
	"database/sql"
	"flag"
	"fmt"
	"log/slog"
	"os"
	"path/filepath"

	synclogdb "magnetmoments-sync/lib/synclog/db"

	_ "modernc.org/sqlite"
)

const devConfig = `{
  site: {
    dir: "dev/.state/site",
  },
  journal: {
    file: "dev/.state/journal.db",
  },
  debug: {
    http_dump_dir: "dev/.state/http_dump",
  },
}
`

const devShopPage = `<!DOCTYPE html>
<html lang="en">
<head>
  <title>Shop — Magnet Moments Co.</title>
</head>
<body>
  <main>
      <div class="product-grid">
        <!-- PRODUCTS_START -->
        <!-- PRODUCTS_END -->
      </div>
  </main>
</body>
</html>
`

const devHomePage = `<!DOCTYPE html>
<html lang="en">
<head>
  <title>Magnet Moments Co.</title>
</head>
<body>
  <main>
      <div class="featured-grid">
        <!-- FEATURED_START -->
        <!-- FEATURED_END -->
      </div>
  </main>
</body>
</html>
`

func create(recreate bool) error {
	_, err := os.Stat("go.mod")
	if os.IsNotExist(err) {
		return fmt.Errorf("the dev environment must be created in the repository root (the same directory as the 'go.mod' file)")
	}

	if recreate {
		err = os.RemoveAll("dev/.state")
		if err != nil && !os.IsNotExist(err) {
			return err
		}
	}
	err = os.MkdirAll("dev/.state", 0777)
	if err != nil && !os.IsExist(err) {
		return err
	}

	err = createJournalDb("journal.db", synclogdb.Schema)
	if err != nil {
		return err
	}
	err = createSite()
	if err != nil {
		return err
	}
	return writeFileOnce(filepath.Join("dev", ".state", "config.json5"), devConfig)
}

func createJournalDb(filename, schema string) error {
	path := filepath.Join("dev", ".state", filename)

	_, err := os.Stat(path)
	if err == nil {
		fmt.Println("database already created at", path)
		return nil
	}

	fmt.Println("creating database at", path)
	db, err := sql.Open("sqlite", path)
	if err != nil {
		return err
	}
	defer db.Close()
	_, err = db.Exec(schema)
	return err
}

func createSite() error {
	siteDir := filepath.Join("dev", ".state", "site")
	err := os.MkdirAll(filepath.Join(siteDir, "shop"), 0777)
	if err != nil && !os.IsExist(err) {
		return err
	}

	err = writeFileOnce(filepath.Join(siteDir, "index.html"), devHomePage)
	if err != nil {
		return err
	}
	return writeFileOnce(filepath.Join(siteDir, "shop", "index.html"), devShopPage)
}

func writeFileOnce(path, contents string) error {
	_, err := os.Stat(path)
	if err == nil {
		fmt.Println("file already created at", path)
		return nil
	}

	fmt.Println("creating file at", path)
	return os.WriteFile(path, []byte(contents), 0644)
}

func main() {
	recreate := flag.Bool("recreate", false, "recreate the dev environment from scratch")
	flag.Parse()

	err := create(*recreate)
	if err != nil {
		slog.Error("failed to create dev environment", "err", err.Error())
		os.Exit(1)
	}

	slog.Info("dev environment created successfully!")
}
