package werr

import "fmt"

// Message is the enumerated sub-reason within a Kind. Implementations
// carry the offending value by its display form (never by reference, per
// spec.md §3.6) and render themselves in the active locale.
type Message interface {
	// English renders the message in English.
	English() string
	// Japanese renders the message in Japanese.
	Japanese() string
}

// textMessage is a Message with no interpolated values.
type textMessage struct {
	en string
	ja string
}

func (m textMessage) English() string  { return m.en }
func (m textMessage) Japanese() string { return m.ja }

// Plain constructs a Message with fixed English/Japanese text.
func Plain(en, ja string) Message { return textMessage{en: en, ja: ja} }

var (
	MsgUnknown = Plain("unknown error", "不明なエラーです")

	// Environment / definitions
	MsgAlreadyDefined = func(name string) Message {
		return Plain(
			fmt.Sprintf("identifier %q is already defined", name),
			fmt.Sprintf("識別子 %q は既に定義されています", name),
		)
	}
	MsgIsPrivateMember = func(module, member string) Message {
		return Plain(
			fmt.Sprintf("%s.%s is a private member", module, member),
			fmt.Sprintf("%s.%s はプライベートメンバーです", module, member),
		)
	}
	MsgConstReassign = func(name string) Message {
		return Plain(
			fmt.Sprintf("%q is a constant and cannot be reassigned", name),
			fmt.Sprintf("%q は定数のため再代入できません", name),
		)
	}
	MsgNotDefined = func(name string) Message {
		return Plain(
			fmt.Sprintf("%q is not defined", name),
			fmt.Sprintf("%q は定義されていません", name),
		)
	}

	// Builtin arg coercion
	MsgBuiltinArgInvalid = func(display string) Message {
		return Plain(
			fmt.Sprintf("invalid argument: %s", display),
			fmt.Sprintf("不正な引数です: %s", display),
		)
	}
	MsgBuiltinArgRequiredAt = func(pos int) Message {
		return Plain(
			fmt.Sprintf("argument %d is required", pos),
			fmt.Sprintf("%d番目の引数が必要です", pos),
		)
	}
	MsgBuiltinArgCastError = func(display, toType string) Message {
		return Plain(
			fmt.Sprintf("cannot cast %s to %s", display, toType),
			fmt.Sprintf("%s を %s に変換できません", display, toType),
		)
	}
	MsgBuiltinArgIsNotFunction = Plain("argument is not a function", "引数が関数ではありません")

	// Struct engine
	MsgStructMemberSizeError = func(maxLen int) Message {
		return Plain(
			fmt.Sprintf("value exceeds member capacity of %d", maxLen),
			fmt.Sprintf("メンバーの容量 %d を超えています", maxLen),
		)
	}
	MsgStructMemberTypeError = Plain(
		"member type does not support this operation",
		"このメンバーの型ではこの操作はサポートされません",
	)
	MsgUStructStringMemberSizeOverflow = func(bufSize, strSize int) Message {
		return Plain(
			fmt.Sprintf("string of %d bytes does not fit in a %d byte buffer", strSize, bufSize),
			fmt.Sprintf("文字列(%dバイト)がバッファ(%dバイト)に収まりません", strSize, bufSize),
		)
	}
	MsgUnknownMemberType = func(t string) Message {
		return Plain(
			fmt.Sprintf("unknown struct member type %q", t),
			fmt.Sprintf("不明な構造体メンバー型です: %q", t),
		)
	}
	MsgMemberNotFound = func(name string) Message {
		return Plain(
			fmt.Sprintf("no such member %q", name),
			fmt.Sprintf("メンバー %q は存在しません", name),
		)
	}

	// COM bridge
	MsgNamedArgNotFound = func(name string) Message {
		return Plain(
			fmt.Sprintf("no parameter named %q", name),
			fmt.Sprintf("名前付き引数 %q は見つかりません", name),
		)
	}
	MsgFailedToConvertToCollection = Plain(
		"object could not be converted to a collection",
		"オブジェクトをコレクションに変換できませんでした",
	)
	MsgNamedArgNotAllowed = Plain(
		"named arguments are not allowed for WMI methods",
		"WMIメソッドでは名前付き引数は使用できません",
	)
	MsgComCreateFailed = func(progID string) Message {
		return Plain(
			fmt.Sprintf("failed to create COM object %q", progID),
			fmt.Sprintf("COMオブジェクト %q の作成に失敗しました", progID),
		)
	}
	MsgComInvokeFailed = func(member string, hresult int32) Message {
		return Plain(
			fmt.Sprintf("invoke of %q failed (hresult 0x%08X)", member, uint32(hresult)),
			fmt.Sprintf("%q の呼び出しに失敗しました (hresult 0x%08X)", member, uint32(hresult)),
		)
	}

	// File handles
	MsgFileNotOpen    = Plain("file handle is not open", "ファイルハンドルが開かれていません")
	MsgFileOpenFailed = func(path string) Message {
		return Plain(
			fmt.Sprintf("failed to open %q", path),
			fmt.Sprintf("%q を開けませんでした", path),
		)
	}
	MsgFileUnknownMode = func(flag uint32) Message {
		return Plain(
			fmt.Sprintf("unknown file open mode: %#x", flag),
			fmt.Sprintf("不明なファイルモードです: %#x", flag),
		)
	}
	MsgFileNotReadable = Plain(
		"file was not opened for reading",
		"読み取り用に開かれていないファイルです",
	)
	MsgFileUnknownEncoding = func(name string) Message {
		return Plain(
			fmt.Sprintf("encoding not supported: %s", name),
			fmt.Sprintf("未対応のエンコーディングです: %s", name),
		)
	}
	MsgFileCsvError = func(detail string) Message {
		return Plain(
			fmt.Sprintf("csv error: %s", detail),
			fmt.Sprintf("CSVエラー: %s", detail),
		)
	}
)

// NotFinite renders a NotFinite(v) message: an arithmetic result overflowed
// to ±Inf or NaN.
func NotFinite(v float64) Message {
	return Plain(
		fmt.Sprintf("result is not a finite number: %v", v),
		fmt.Sprintf("結果が有限な数値ではありません: %v", v),
	)
}
