// Package sheet composes signature-sheet pages out of layout boxes.
//
// A page is built top to bottom: the page-header row (lab, section, date),
// the column-header row whose stretch Student column absorbs whatever
// width the fixed and auto columns leave over, one block of rows per lab
// group with a group-number cell spanning the block, and a closing border
// down to the bottom margin. The [Document] assembler collects one page
// per section and hands the finished pages to the renderer together with
// the font-resolution callback.
package sheet
