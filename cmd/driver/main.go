package main

import (
	"bufio"
	"encoding/json"
	"flag"
	"fmt"
	"log"
	"os"
	"strings"

	"github.com/danielpatrickdp/statespace/go-core/internal/logging"
	"github.com/danielpatrickdp/statespace/go-core/internal/space"
	"github.com/danielpatrickdp/statespace/go-core/internal/store"
)

// #region main
func main() {
	dbPath := flag.String("db", envOr("STATESPACE_DB", "statespace.db"), "path to statespace.db")
	spaceName := flag.String("space", "demo", "space name")
	elementsFlag := flag.String("elements", "e1,e2,e3", "basis elements used when creating a new space")
	labelsFlag := flag.String("labels", "state0,state1,state2", "enumeration labels used when creating a new space")
	flag.Parse()

	st, err := store.NewStore(*dbPath)
	if err != nil {
		log.Fatalf("failed to open store: %v", err)
	}
	defer st.Close()

	// Ensure an initial version exists
	current, err := st.GetCurrent(*spaceName)
	if err != nil {
		log.Printf("No active version for %s, creating initial state...", *spaceName)
		fresh, err := space.NewCyclicEnum(splitList(*elementsFlag), splitList(*labelsFlag))
		if err != nil {
			log.Fatalf("failed to construct space: %v", err)
		}
		current, err = st.CreateInitialSpace(store.Snapshot(*spaceName, fresh))
		if err != nil {
			log.Fatalf("failed to create initial state: %v", err)
		}
	}

	sp, err := current.ToSpace()
	if err != nil {
		log.Fatalf("failed to restore space: %v", err)
	}

	fmt.Println("State Space Driver ready.")
	fmt.Printf("  DB: %s | Space: %s | Version: %s\n", *dbPath, *spaceName, current.VersionID)
	fmt.Println("Commands: update <element> | check | resolve | show | audit | history | quit")

	scanner := bufio.NewScanner(os.Stdin)
	stepNum := 0

	for {
		fmt.Print("> ")
		if !scanner.Scan() {
			break
		}
		line := strings.TrimSpace(scanner.Text())
		if line == "" {
			continue
		}
		if line == "quit" || line == "exit" {
			break
		}

		fields := strings.Fields(line)
		switch fields[0] {
		case "show":
			fmt.Println(sp)

		case "check":
			fmt.Printf("check: %v\n", sp.Check())

		case "resolve":
			if res := sp.Resolve(); res.Collapsed {
				fmt.Printf("resolve: %s\n", res.Representative)
			} else {
				fmt.Println("resolve: no collapse performed")
			}

		case "audit":
			rep := sp.Audit()
			for _, e := range rep.Elements {
				fmt.Printf("  %-12s index=%-4d label=%-12s valid=%v\n", e.Name, e.Index, e.Label, e.Valid)
			}
			fmt.Printf("audit: passed=%v\n", rep.Passed)

		case "history":
			versions, err := st.ListVersions(*spaceName, 10)
			if err != nil {
				log.Printf("history error: %v", err)
				continue
			}
			for _, v := range versions {
				vs, err := v.ToSpace()
				if err != nil {
					log.Printf("restore %s: %v", v.VersionID, err)
					continue
				}
				fmt.Printf("  %s  %s\n", v.VersionID, vs)
			}

		case "update":
			if len(fields) < 2 {
				fmt.Println("usage: update <element>")
				continue
			}
			selector := fields[1]

			from, _ := sp.Index(selector)
			if err := sp.Update(selector); err != nil {
				log.Printf("update error: %v", err)
				continue
			}
			to, _ := sp.Index(selector)
			stepNum++
			stepID := fmt.Sprintf("step-%d", stepNum)

			// Commit new version
			rec := store.NewVersion(current, sp)
			if err := st.CommitSpace(rec); err != nil {
				log.Printf("commit error: %v", err)
				continue
			}
			current = rec

			// Log provenance
			checkPassed := sp.Check()
			note, _ := json.Marshal(logging.StepRecord{
				StepID:      stepID,
				Selector:    selector,
				FromIndex:   from,
				ToIndex:     to,
				FromLabel:   sp.Enum().Label(from),
				ToLabel:     sp.Enum().Label(to),
				CheckPassed: checkPassed,
			})
			err = logging.LogUpdate(st.DB(), logging.UpdateEntry{
				VersionID:    rec.VersionID,
				SpaceName:    *spaceName,
				BasisElement: selector,
				FromIndex:    from,
				ToIndex:      to,
				CheckPassed:  checkPassed,
				Note:         string(note),
			})
			if err != nil {
				log.Printf("logging error: %v", err)
			}

			fmt.Printf("[%s] %s: %s -> %s | check=%v\n",
				stepID, selector, sp.Enum().Label(from), sp.Enum().Label(to), checkPassed)

		default:
			fmt.Println("Commands: update <element> | check | resolve | show | audit | history | quit")
		}
	}
}
// #endregion main

// #region helpers
func envOr(key, fallback string) string {
	if v := os.Getenv(key); v != "" {
		return v
	}
	return fallback
}

func splitList(s string) []string {
	parts := strings.Split(s, ",")
	out := make([]string, 0, len(parts))
	for _, p := range parts {
		if p = strings.TrimSpace(p); p != "" {
			out = append(out, p)
		}
	}
	return out
}
// #endregion helpers
