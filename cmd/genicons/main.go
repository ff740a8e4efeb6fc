// genicons génère les icônes de l'application Cockpit CFDT dans
// src-tauri/icons : les PNG aux tailles attendues par le bundler, le .ico
// Windows et, quand iconutil est disponible, le .icns macOS.
//
// Usage: go run ./cmd/genicons
package main

import (
	"fmt"
	"os"
	"path/filepath"

	"github.com/charmbracelet/lipgloss"
	"github.com/disintegration/imaging"

	"github.com/Sabrina-Travail-Lewagon/cockpit-cfdt-final/internal/hicolor"
	"github.com/Sabrina-Travail-Lewagon/cockpit-cfdt-final/internal/icns"
	"github.com/Sabrina-Travail-Lewagon/cockpit-cfdt-final/internal/ico"
	"github.com/Sabrina-Travail-Lewagon/cockpit-cfdt-final/internal/icon"
)

const (
	iconsDir    = "src-tauri/icons"
	hicolorRoot = "icons"
	hicolorName = "cockpit-cfdt.png"
)

var (
	titleStyle = lipgloss.NewStyle().Bold(true)
	okStyle    = lipgloss.NewStyle().Foreground(lipgloss.Color("42"))
	warnStyle  = lipgloss.NewStyle().Foreground(lipgloss.Color("214"))
	errStyle   = lipgloss.NewStyle().Foreground(lipgloss.Color("196")).Bold(true)
	hintStyle  = lipgloss.NewStyle().Faint(true)
)

// targets is the file set consumed by the packaging pipeline; names and
// sizes are a contract, do not rename them here.
func targets() []icon.Target {
	return []icon.Target{
		{Size: 1024, Path: filepath.Join(iconsDir, "icon.png")},
		{Size: 32, Path: filepath.Join(iconsDir, "32x32.png")},
		{Size: 128, Path: filepath.Join(iconsDir, "128x128.png")},
		{Size: 256, Path: filepath.Join(iconsDir, "128x128@2x.png")},
	}
}

func main() {
	if err := run(); err != nil {
		fmt.Fprintln(os.Stderr, errStyle.Render("Erreur :")+" "+err.Error())
		os.Exit(1)
	}
}

func run() error {
	fmt.Println(titleStyle.Render("🎨 Génération des icônes Cockpit CFDT..."))
	fmt.Println()

	if err := os.MkdirAll(iconsDir, 0o755); err != nil {
		return fmt.Errorf("create %s: %w", iconsDir, err)
	}

	err := icon.EmitAll(targets(), icon.DefaultOptions(), func(t icon.Target, err error) {
		if err == nil {
			fmt.Printf("%s %s créé (%dx%d)\n", okStyle.Render("✓"), t.Path, t.Size, t.Size)
		}
	})
	if err != nil {
		return err
	}

	// ICO and ICNS repackage the rendered 1024px master, not a fresh drawing.
	master := filepath.Join(iconsDir, "icon.png")
	src, err := imaging.Open(master)
	if err != nil {
		return fmt.Errorf("open %s: %w", master, err)
	}

	icoPath := filepath.Join(iconsDir, "icon.ico")
	if err := ico.WriteFile(icoPath, src); err != nil {
		return fmt.Errorf("write %s: %w", icoPath, err)
	}
	fmt.Printf("%s %s créé (multi-résolution)\n", okStyle.Render("✓"), icoPath)

	icnsPath := filepath.Join(iconsDir, "icon.icns")
	res, err := icns.Assemble(src, icnsPath)
	switch {
	case err != nil:
		return err
	case res.Skipped:
		fmt.Printf("%s  iconutil indisponible, %s non créé (%s)\n", warnStyle.Render("⚠"), icnsPath, res.Reason)
		fmt.Println(hintStyle.Render("   Sur macOS, relance cet outil pour générer l'icns."))
	default:
		fmt.Printf("%s %s créé (macOS, %dpx)\n", okStyle.Render("✓"), res.Path, res.Width)
	}

	if err := hicolor.Emit(src, hicolorRoot, hicolorName); err != nil {
		fmt.Printf("%s  thème hicolor incomplet : %v\n", warnStyle.Render("⚠"), err)
	} else {
		fmt.Printf("%s %s/hicolor créé (Linux)\n", okStyle.Render("✓"), hicolorRoot)
	}

	fmt.Println()
	fmt.Println(titleStyle.Render("✅ Icônes générées avec succès !"))
	fmt.Println()
	fmt.Printf("Fichiers créés dans %s/\n", iconsDir)
	fmt.Println()
	fmt.Println("🔄 Maintenant, fais :")
	fmt.Println(hintStyle.Render("  git add src-tauri/icons/"))
	fmt.Println(hintStyle.Render("  git commit -m 'Ajout des icônes'"))
	fmt.Println(hintStyle.Render("  git push"))
	return nil
}
