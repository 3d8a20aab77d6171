/*
Package cnnum renders numbers as Chinese numeral text.

Two numeral sets are provided.
[Price] and [PriceWithSuffix] produce the uppercase bank numerals
(壹贰叁...) used on cheques and other financial documents, with the
currency units 元 and the subunits 角 (tenths), 分 (hundredths),
厘 (thousandths), and 毫 (ten-thousandths).
[Number] and [NumberString] produce the plain numerals (一二三...) of
everyday text, with a digit-by-digit fractional reading after 点.

# Zero Placeholders

The integer part is decomposed into 4-digit groups joined by 万 and 亿.
Skipped magnitudes read as a single 零, never doubled, including across
group boundaries: 10001000 reads 壹仟万零壹仟.
Currency fractions never take a placeholder: 1.05 reads 壹元伍分.

# Failure

Rendering never returns an error.
Input that cannot be expressed (NaN, infinities, unparseable strings,
magnitudes beyond 19 significant digits) yields an empty string.
*/
package cnnum
