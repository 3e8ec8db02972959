package logger

import "github.com/ideamans/go-l10n"

func init() {
	l10n.Register("ja", l10n.LexiconMap{
		// Orchestration
		"Rendering %s":                  "%s を描画中",
		"Output saved to %s":            "出力を %s に保存しました",
		"Exported %s: %d bytes":         "%s をエクスポートしました: %d バイト",
		"Summary saved to %s":           "サマリーを %s に保存しました",
		"Render completed in %d ms":     "描画が %d ms で完了しました",
		"Loaded %d fonts":               "%d 個のフォントを読み込みました",
		"Loaded script with %d ops":     "%d 個の操作を含むスクリプトを読み込みました",
		"Interrupted, shutting down...": "中断されました。終了中...",

		// Surface
		"Surface created: %dx%d at scale %.2f":         "サーフェスを作成: %dx%d 倍率 %.2f",
		"Rejected width change on fixed-size surface":  "固定サイズのサーフェスの幅変更を拒否しました",
		"Rejected height change on fixed-size surface": "固定サイズのサーフェスの高さ変更を拒否しました",
		"Rejected scale change on fixed-scale surface": "固定倍率のサーフェスの倍率変更を拒否しました",
		"Rejected drawImage with %d coordinates":       "座標数 %d の drawImage を拒否しました",

		// Viewport
		"Resizing viewport to %dx%d":  "ビューポートを %dx%d にリサイズ中",
		"Surface rejected resize: %s": "サーフェスがリサイズを拒否しました: %s",
		"Redraw failed: %s":           "再描画に失敗しました: %s",
		"Canvas %s not found":         "キャンバス %s が見つかりません",

		// Draw stage
		"Executing op %d/%d: %s":   "操作を実行中 %d/%d: %s",
		"Snapshot saved for op %d": "操作 %d のスナップショットを保存しました",

		// Warnings
		"Font %s not found, using fallback": "フォント %s が見つかりません。代替フォントを使用します",
		"Failed to save snapshot: %s":       "スナップショットの保存に失敗しました: %s",

		// Errors
		"Failed to load script: %s":  "スクリプトの読み込みに失敗しました: %s",
		"Failed to draw op %d: %s":   "操作 %d の描画に失敗しました: %s",
		"Failed to export: %s":       "書き出しに失敗しました: %s",
		"Failed to write output: %s": "出力の書き込みに失敗しました: %s",
	})
}
