// Package main provides localization for the mosaic CLI.
package main

import (
	"github.com/ideamans/go-l10n"
)

func init() {
	// Register Japanese translations for CLI messages.
	l10n.Register("ja", l10n.LexiconMap{
		// Flag categories
		"Output":        "出力先",
		"Configuration": "設定",
		"Text":          "テキスト",
		"Debug":         "デバッグ",
		"Logging":       "ログ",

		// Root command
		"Draw scripted shapes, text and images onto a canvas": "スクリプトで図形・テキスト・画像をキャンバスに描画",

		// Render command
		"Render a draw script to PNG, JPEG or PDF": "描画スクリプトをPNG・JPEG・PDFに出力",
		"render needs exactly one script path":     "スクリプトのパスを1つだけ指定してください",
		"%d ops, %dx%d @%gx, %s, %d bytes":         "%d 操作, %dx%d @%gx, %s, %d バイト",

		// Text commands
		"Print the metrics of a line of text":             "1行のテキストの寸法を表示",
		"Wrap text to a width and print the lines":        "テキストを指定幅で折り返して各行を表示",
		"expected exactly one text argument":              "テキスト引数を1つだけ指定してください",
		"width %.2f ascent %.2f descent %.2f height %.2f": "幅 %.2f アセント %.2f ディセント %.2f 高さ %.2f",
		"Maximum line width in pixels (required)":         "最大行幅（ピクセル、必須）",
		"Line height in pixels (default from config)":     "行の高さ（ピクセル、既定値は設定ファイル）",
		"Font name (default from config)":                 "フォント名（既定値は設定ファイル）",
		"Font size in pixels (default from config)":       "フォントサイズ（ピクセル、既定値は設定ファイル）",

		// Version command
		"Show version information": "バージョン情報を表示",
		"mosaic version %s (%s)":   "mosaic バージョン %s (%s)",

		// Flags
		"Output file path (required)":                                          "出力ファイルパス（必須）",
		"Output format: png, jpeg or pdf (default: from the output extension)": "出力形式: png, jpeg, pdf（既定値は出力ファイルの拡張子）",
		"Output render summary to file (Markdown format)":                      "描画サマリーをファイルに出力（Markdown形式）",
		"JPEG quality (1-100)":                                                 "JPEG品質（1-100）",
		"YAML configuration file":                                              "YAML設定ファイル",
		"Drawing backend: raster or pdf":                                       "描画バックエンド: raster または pdf",
		"Override the script scale factor":                                     "スクリプトの倍率を上書き",
		"Save the parsed script and per-op snapshots":                          "解析済みスクリプトと操作ごとのスナップショットを保存",
		"Directory for debug output":                                           "デバッグ出力用ディレクトリ",
		"Log level (debug, info, warn, error)":                                 "ログレベル (debug, info, warn, error)",
		"Also write logs to a rotated file":                                    "ローテーションされるファイルにもログを出力",
		"Suppress all console log output":                                      "コンソールへのログ出力を抑制",
	})
}
