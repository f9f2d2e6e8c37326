// Package info carries the fixed reference texts shown by both shells.
// These are informational only; nothing in the calculation reads them.
package info

// WaterQuality explains why water treatment matters for the must.
const WaterQuality = `Water quality in mead making

Water quality is decisive for a healthy fermentation and the final
flavor. It affects yeast performance, mouthfeel, and how well spice
and fruit aromas come through.

Key points:
  - Chlorine/chloramine: must be removed! They produce unpleasant
    medicinal off-flavors. Use Campden tablets or a carbon filter.
  - Mineral content (hardness): minerals like calcium and magnesium
    are yeast nutrients. Fully distilled water may need mineral
    additions.
  - pH: yeast prefers a slightly acidic environment (pH 3.0-4.0).
    High alkalinity in tap water can stress the yeast.`

// HoneyVarieties describes common honey choices for mead.
const HoneyVarieties = `Honey varieties for mead making

The floral source of the honey sets the mead's color, aroma, and
final flavor.

Common varieties:
  - Clover: pale, subtle flavor. Excellent for traditional meads.
    The most common and easiest to find.
  - Orange Blossom: citrusy, floral nose. Prized in lighter meads
    and melomels (fruit meads).
  - Wildflower: highly variable, rich and complex. Suits spiced
    meads (metheglins).
  - Buckwheat: very dark, rich and assertive, often molasses-like.
    Needs long aging.`
