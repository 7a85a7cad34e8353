package render

import (
	"fmt"

	"github.com/ziadkadry99/writeguide/internal/content"
)

// Section labels. Every label carries the Chinese and English text.
const (
	LabelOriginal    = "原文 Original Sentence"
	LabelChinese     = "中文表述 Chinese Expression"
	LabelImproved    = "改進後的句子 Improved Sentence(s)"
	LabelTranslation = "英文翻譯 English Translation"
	LabelReason      = "改進原因 Reason for Improvement"
	LabelNote        = "說明 Note"
	LabelExamples    = "更多範例 Further Examples"

	LangEn = "EN"
	LangZh = "ZH"
)

// User-facing messages.
const (
	MessageIntro          = "請從左側選單選擇一個項目開始學習。Please select an item from the menu on the left to start learning."
	MessageManifestFailed = "應用程式初始化失敗，請檢查 manifest.json 是否存在且格式正確。App initialization failed. Please check if manifest.json exists and is correctly formatted."
	MessageManifestEmpty  = "無法載入學習清單。Could not load the learning manifest."
	MessageNotInManifest  = "項目未找到。Item not found in manifest."
	// NavigationError replaces the sidebar when the manifest fails.
	NavigationError = "無法載入選單"
)

// Point builds the view for p. Unknown types render like improvements but
// never show a reason section.
func Point(p content.Point) View {
	translation := p.Type == content.TypeTranslation

	v := View{
		Kind:     KindPoint,
		Type:     p.Type,
		Title:    p.Title,
		Subtitle: p.TitleEn,
	}

	original := Section{Kind: SectionOriginal, Label: LabelOriginal, Body: p.OriginalSentence}
	improved := Section{Kind: SectionImproved, Label: LabelImproved, Items: copyStrings(p.ImprovedSentences)}
	if translation {
		original.Label = LabelChinese
		improved.Label = LabelTranslation
	}
	v.Sections = append(v.Sections, original, improved)

	switch {
	case p.Type == content.TypeImprovement && p.ReasonEn != "" && p.ReasonZh != "":
		v.Sections = append(v.Sections, Section{
			Kind:  SectionReason,
			Label: LabelReason,
			En:    p.ReasonEn,
			Zh:    p.ReasonZh,
		})
	case translation && p.ReasonEn != "":
		v.Sections = append(v.Sections, Section{
			Kind:  SectionNote,
			Label: LabelNote,
			Body:  p.ReasonEn,
		})
	}

	if examples := p.Examples(); len(examples) > 0 {
		v.Sections = append(v.Sections, Section{
			Kind:  SectionExamples,
			Label: LabelExamples,
			Items: examples,
		})
	}

	return v
}

// Intro is the placeholder view for "nothing selected".
func Intro() View {
	return View{Kind: KindIntro, Message: MessageIntro}
}

// ContentError is shown when the point for id could not be loaded.
func ContentError(id string) View {
	return View{
		Kind:    KindError,
		Message: fmt.Sprintf("無法載入內容： %s.json。\nError loading content: %s.json.", id, id),
	}
}

// NotInManifest is shown when a selection names an id the manifest lacks.
func NotInManifest(id string) View {
	return View{
		Kind:    KindError,
		Message: MessageNotInManifest + " (" + id + ")",
	}
}

// ManifestFailed is shown when the manifest could not be loaded.
func ManifestFailed() View {
	return View{Kind: KindError, Message: MessageManifestFailed}
}

// ManifestEmpty is shown when the manifest loaded but lists no points.
func ManifestEmpty() View {
	return View{Kind: KindError, Message: MessageManifestEmpty}
}

func copyStrings(in []string) []string {
	if in == nil {
		return nil
	}
	out := make([]string, len(in))
	copy(out, in)
	return out
}
